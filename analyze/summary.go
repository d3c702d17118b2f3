package analyze

import "github.com/harmoniccanvas/voicecheck/model"

const (
	errorWeight   = 10
	warningWeight = 3
	infoWeight    = 1
)

func summarize(violations []model.Violation) model.Summary {
	s := model.Summary{
		Total: len(violations),
		BySeverity: map[model.Severity]int{
			model.SeverityError:   0,
			model.SeverityWarning: 0,
			model.SeverityInfo:    0,
		},
		ByType: make(map[model.ViolationType]int),
	}
	for _, v := range violations {
		s.BySeverity[v.Severity]++
		s.ByType[v.Type]++
	}

	score := 100
	score -= s.BySeverity[model.SeverityError] * errorWeight
	score -= s.BySeverity[model.SeverityWarning] * warningWeight
	score -= s.BySeverity[model.SeverityInfo] * infoWeight
	if score < 0 {
		score = 0
	}
	s.Score = score
	s.IsValid = s.BySeverity[model.SeverityError] == 0
	return s
}
