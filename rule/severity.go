package rule

import "github.com/harmoniccanvas/voicecheck/model"

// Severity-by-strictness tables, built once as immutable data.
var antiparallelSeverity = map[model.Strictness]model.Severity{
	model.StrictnessRelaxed: model.SeverityWarning,
	model.StrictnessNormal:  model.SeverityWarning,
	model.StrictnessStrict:  model.SeverityError,
}

var hiddenSeverity = map[model.Strictness]model.Severity{
	model.StrictnessRelaxed: model.SeverityWarning,
	model.StrictnessNormal:  model.SeverityWarning,
	model.StrictnessStrict:  model.SeverityError,
}

var dissonanceSeverity = map[model.Strictness]model.Severity{
	model.StrictnessRelaxed: model.SeverityWarning,
	model.StrictnessNormal:  model.SeverityWarning,
	model.StrictnessStrict:  model.SeverityError,
}

func severityFor(table map[model.Strictness]model.Severity, s model.Strictness) model.Severity {
	if sev, ok := table[s]; ok {
		return sev
	}
	return model.SeverityWarning
}
