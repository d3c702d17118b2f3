package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/harmoniccanvas/voicecheck/analyze"
	"github.com/harmoniccanvas/voicecheck/constants"
	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveCache = analyze.NewCache()

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves the analyzer over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.AnalyzeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	cfg, err := resolveConfig(input.Preset, input.Config)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	var res model.AnalysisResult
	if input.StartBeat != nil && input.EndBeat != nil {
		// range analyses are interactive one-offs, not worth caching
		res = analyze.RunRangeMerged(input.Voices, cfg, *input.StartBeat, *input.EndBeat)
	} else {
		res = serveCache.Analyze(input.Voices, cfg)
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   constants.GetCorsOrigins(),
		AllowedMethods:   []string{http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), c.Handler(router)))
}
