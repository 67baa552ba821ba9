package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/xtding233/battle-backend/internal/battle"
	"github.com/xtding233/battle-backend/internal/config"
)

type serverConfig struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	ConfigDir     string        `env:"CONFIG_DIR" envDefault:"./config"`
	Watch         bool          `env:"WATCH" envDefault:"false"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"5s"`
}

type server struct {
	loader *config.Loader
	log    *zap.Logger
}

// contextPayload is the wire form of battle.Context. Weather is optional
// and defaults to seasonable (0.5) so an omitted field is neutral rather
// than a storm.
type contextPayload struct {
	TerrainType     string   `json:"terrain_type,omitempty"`
	TerrainModifier float64  `json:"terrain_modifier,omitempty"`
	Weather         *float64 `json:"weather,omitempty"`
}

func (p *contextPayload) toContext() battle.Context {
	ctx := battle.Context{Weather: 0.5}
	if p == nil {
		return ctx
	}
	ctx.TerrainType = p.TerrainType
	ctx.TerrainModifier = p.TerrainModifier
	if p.Weather != nil {
		ctx.Weather = *p.Weather
	}
	return ctx
}

type resolveRequest struct {
	Scenario string `json:"scenario,omitempty"`

	Attacker battle.Army `json:"attacker"`
	Defender battle.Army `json:"defender"`

	AttackerCommander *battle.Commander     `json:"attacker_commander,omitempty"`
	DefenderCommander *battle.Commander     `json:"defender_commander,omitempty"`
	Fortification     *battle.Fortification `json:"fortification,omitempty"`
	Context           *contextPayload       `json:"context,omitempty"`

	// Per-request tuning knobs layered over the scenario config.
	Overrides *config.Raw `json:"overrides,omitempty"`

	// Display names; when any is set the response carries a text summary.
	AttackerName string `json:"attacker_name,omitempty"`
	DefenderName string `json:"defender_name,omitempty"`
	Location     string `json:"location,omitempty"`
}

type resolveResponse struct {
	Result        battle.Result `json:"result"`
	Summary       string        `json:"summary,omitempty"`
	ConfigVersion string        `json:"config_version,omitempty"`
	Err           string        `json:"err,omitempty"`
}

type sweepRequest struct {
	resolveRequest
	Params battle.SweepParams `json:"params"`
}

type sweepResponse struct {
	Sweep         battle.SweepResult `json:"sweep"`
	ConfigVersion string             `json:"config_version,omitempty"`
	Err           string             `json:"err,omitempty"`
}

type configResponse struct {
	Version string        `json:"version,omitempty"`
	Raw     config.Raw    `json:"raw"`
	Config  battle.Config `json:"config"`
	Err     string        `json:"err,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resolveResponse{Err: "invalid request body: " + err.Error()})
		return
	}
	if req.Attacker.Manpower() <= 0 || req.Defender.Manpower() <= 0 {
		writeJSON(w, http.StatusBadRequest, resolveResponse{Err: "both sides need manpower"})
		return
	}

	raw, cfg, err := s.loader.Resolve(req.Scenario, req.Overrides)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, resolveResponse{Err: err.Error()})
		return
	}

	result := battle.Resolve(
		&req.Attacker, &req.Defender,
		req.Context.toContext(),
		req.AttackerCommander, req.DefenderCommander,
		req.Fortification, cfg,
	)

	resp := resolveResponse{Result: result, ConfigVersion: raw.Version}
	if req.AttackerName != "" || req.DefenderName != "" || req.Location != "" {
		resp.Summary = battle.Summary(result, req.AttackerName, req.DefenderName, req.Location)
	}

	s.log.Info("battle resolved",
		zap.String("scenario", req.Scenario),
		zap.Stringer("outcome", result.Outcome),
		zap.Int("attacker_casualties", result.AttackerCasualties),
		zap.Int("defender_casualties", result.DefenderCasualties),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, sweepResponse{Err: "invalid request body: " + err.Error()})
		return
	}
	if req.Attacker.Manpower() <= 0 || req.Defender.Manpower() <= 0 {
		writeJSON(w, http.StatusBadRequest, sweepResponse{Err: "both sides need manpower"})
		return
	}

	raw, cfg, err := s.loader.Resolve(req.Scenario, req.Overrides)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, sweepResponse{Err: err.Error()})
		return
	}

	sweep, err := battle.Sweep(
		&req.Attacker, &req.Defender,
		req.Context.toContext(),
		req.AttackerCommander, req.DefenderCommander,
		req.Fortification, req.Params, cfg,
	)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, sweepResponse{Err: err.Error()})
		return
	}

	s.log.Info("sweep resolved",
		zap.String("scenario", req.Scenario),
		zap.Int("cells", sweep.Cells),
	)
	writeJSON(w, http.StatusOK, sweepResponse{Sweep: sweep, ConfigVersion: raw.Version})
}

func (s *server) handleConfig(w http.ResponseWriter, r *http.Request) {
	scenario := r.URL.Query().Get("scenario")
	raw, cfg, err := s.loader.Resolve(scenario, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, configResponse{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, configResponse{Version: raw.Version, Raw: raw, Config: cfg})
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/battles/resolve", s.handleResolve).Methods(http.MethodPost)
	r.HandleFunc("/battles/sweep", s.handleSweep).Methods(http.MethodPost)
	r.HandleFunc("/battles/config", s.handleConfig).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
	return r
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	var sc serverConfig
	if err := env.Parse(&sc); err != nil {
		logger.Fatal("parse env", zap.Error(err))
	}

	loader := config.NewLoader(sc.ConfigDir)
	if sc.Watch {
		watcher := config.NewWatcher(loader.WatchPaths(), sc.WatchInterval, func(path string) {
			logger.Info("config changed, reloading", zap.String("path", path))
			loader.Invalidate()
		})
		watcher.Start()
		defer watcher.Stop()
	}

	s := &server{loader: loader, log: logger}

	logger.Info("listening", zap.String("addr", sc.Addr))
	if err := http.ListenAndServe(sc.Addr, s.routes()); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
