// Command syncstub runs a tiny in-memory remote replica speaking the bridge
// HTTP protocol. It exists for local development and manual testing of the
// client against a real endpoint: state lives in memory and is lost on exit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/carbon/internal/logger"
	"github.com/MKhiriev/carbon/internal/utils"
	"github.com/MKhiriev/carbon/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	address := flag.String("a", "localhost:8080", "address to listen on")
	flag.Parse()

	log := logger.New("carbon-syncstub")
	stub := newReplicaStub(log)

	log.Info().Str("address", *address).Msg("starting sync stub server")
	if err := http.ListenAndServe(*address, stub.routes()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

type replicaRecord struct {
	Payload      string `json:"payload"`
	LastModified string `json:"lastModified"`
}

type fullSyncResponse struct {
	Payload           string `json:"payload"`
	LastModified      string `json:"lastModified"`
	ShouldUpdateLocal bool   `json:"shouldUpdateLocal"`
}

type accountResponse struct {
	Available bool  `json:"available"`
	Status    int32 `json:"status"`
}

type statusResponse struct {
	Status int32 `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// replicaStub holds exactly one record, the way a real replica holds one
// serialized projection per account.
type replicaStub struct {
	mu     sync.Mutex
	record *replicaRecord

	logger *logger.Logger
}

func newReplicaStub(log *logger.Logger) *replicaStub {
	return &replicaStub{logger: log}
}

func (s *replicaStub) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/api/init", s.initReplica)
	router.Get("/api/account", s.account)
	router.Get("/api/status", s.status)
	router.Post("/api/subscriptions", s.subscriptions)

	router.Get("/api/replica", s.pull)
	router.Put("/api/replica", s.push)
	router.Delete("/api/replica", s.deleteReplica)
	router.Post("/api/replica/sync", s.fullSync)

	return router
}

func (s *replicaStub) initReplica(w http.ResponseWriter, r *http.Request) {
	s.logger.Info().Str("device", r.Header.Get("X-Device-ID")).Msg("init requested")
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *replicaStub) account(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, accountResponse{
		Available: true,
		Status:    int32(models.AccountAvailable),
	}, http.StatusOK)
}

func (s *replicaStub) status(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, statusResponse{Status: int32(models.SyncIdle)}, http.StatusOK)
}

func (s *replicaStub) subscriptions(w http.ResponseWriter, r *http.Request) {
	s.logger.Info().Str("device", r.Header.Get("X-Device-ID")).Msg("subscription registered")
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *replicaStub) pull(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		utils.WriteJSON(w, errorResponse{Error: "no remote data"}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, *s.record, http.StatusOK)
}

// push stores the record conditionally: the If-Match watermark must be at
// least as new as the stored one, otherwise the caller is behind and gets 409.
func (s *replicaStub) push(w http.ResponseWriter, r *http.Request) {
	var record replicaRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	claimed := r.Header.Get("If-Match")
	if s.record != nil && olderThan(claimed, s.record.LastModified) {
		s.logger.Info().
			Str("claimed", claimed).
			Str("stored", s.record.LastModified).
			Msg("push rejected: stored record is newer")
		utils.WriteJSON(w, errorResponse{Error: "remote replica holds newer data"}, http.StatusConflict)
		return
	}

	s.record = &record
	s.logger.Info().Str("lastModified", record.LastModified).Msg("record stored")
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// fullSync compares watermarks and answers with a verdict: either the stored
// record wins and the caller should update local state, or the caller's
// record is accepted and stored.
func (s *replicaStub) fullSync(w http.ResponseWriter, r *http.Request) {
	var record replicaRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record != nil && olderThan(record.LastModified, s.record.LastModified) {
		s.logger.Info().
			Str("claimed", record.LastModified).
			Str("stored", s.record.LastModified).
			Msg("full sync: stored record wins")
		utils.WriteJSON(w, fullSyncResponse{
			Payload:           s.record.Payload,
			LastModified:      s.record.LastModified,
			ShouldUpdateLocal: true,
		}, http.StatusOK)
		return
	}

	s.record = &record
	s.logger.Info().Str("lastModified", record.LastModified).Msg("full sync: caller record accepted")
	utils.WriteJSON(w, fullSyncResponse{
		Payload:           record.Payload,
		LastModified:      record.LastModified,
		ShouldUpdateLocal: false,
	}, http.StatusOK)
}

func (s *replicaStub) deleteReplica(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		utils.WriteJSON(w, errorResponse{Error: "no remote data"}, http.StatusNotFound)
		return
	}

	s.record = nil
	s.logger.Info().Msg("record deleted")
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// olderThan reports whether watermark a is strictly older than b. Both are
// RFC3339Nano timestamps; an unparsable a loses to a parsable b.
func olderThan(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errB != nil {
		return false
	}
	if errA != nil {
		return true
	}
	return ta.Before(tb)
}
