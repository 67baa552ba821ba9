package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/scenario files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "battles", "default.yaml")
}
func (p Paths) ScenarioPath(scenario string) string {
	return filepath.Join(p.BaseDir, "battles", scenario+".yaml")
}

// Loader reads YAML overlays and merges default → scenario.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]Raw // key: scenario name or "$default"
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]Raw),
	}
}

// WatchPaths lists the files the loader reads for the given scenarios,
// for wiring up a Watcher.
func (l *Loader) WatchPaths(scenarios ...string) []string {
	paths := []string{l.paths.DefaultPath()}
	for _, s := range scenarios {
		if s != "" {
			paths = append(paths, l.paths.ScenarioPath(s))
		}
	}
	return paths
}

// LoadMerged loads and merges default → scenario (scenario optional).
// It returns the merged Raw overlay without normalization.
func (l *Loader) LoadMerged(scenario string) (Raw, error) {
	key := scenario
	if key == "" {
		key = "$default"
	}

	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return Raw{}, fmt.Errorf("read default: %w", err)
	}
	var scenCfg Raw
	if scenario != "" {
		// scenario file is an optional overlay
		scenCfg, err = readYAML(l.paths.ScenarioPath(scenario))
		if err != nil {
			return Raw{}, fmt.Errorf("read scenario %q: %w", scenario, err)
		}
	}

	merged := mergeRaw(defCfg, scenCfg)

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the loader's cache. Call after hot-reload detects
// changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]Raw)
}

// readYAML loads a YAML file into Raw. Missing files return zero cfg, no
// error, so a bare deployment falls back to built-in defaults.
func readYAML(path string) (Raw, error) {
	var cfg Raw
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Raw{}, nil
		}
		return Raw{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Raw{}, err
	}
	return cfg, nil
}

// mergeRaw overlays 'b' on top of 'a': any knob b sets wins.
func mergeRaw(a, b Raw) Raw {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	out.Combat = mergeCombat(out.Combat, b.Combat)
	out.Commander = mergeCommander(out.Commander, b.Commander)
	out.Morale = mergeMorale(out.Morale, b.Morale)
	out.Environment = mergeEnvironment(out.Environment, b.Environment)
	out.Duration = mergeDuration(out.Duration, b.Duration)
	out.Rewards = mergeRewards(out.Rewards, b.Rewards)

	return out
}

func mergeCombat(a, b *CombatCfg) *CombatCfg {
	if b == nil {
		return a
	}
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	overlay(&out.BaseCasualtyRate, b.BaseCasualtyRate)
	overlay(&out.MoraleCasualtyMultiplier, b.MoraleCasualtyMultiplier)
	overlay(&out.StrengthRatioImpact, b.StrengthRatioImpact)
	overlay(&out.ExperienceMultiplier, b.ExperienceMultiplier)
	overlay(&out.EquipmentMultiplier, b.EquipmentMultiplier)
	return &out
}

func mergeCommander(a, b *CommanderCfg) *CommanderCfg {
	if b == nil {
		return a
	}
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	overlay(&out.SkillImpact, b.SkillImpact)
	overlay(&out.LimitPenaltyThreshold, b.LimitPenaltyThreshold)
	return &out
}

func mergeMorale(a, b *MoraleCfg) *MoraleCfg {
	if b == nil {
		return a
	}
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	overlay(&out.RoutingThreshold, b.RoutingThreshold)
	overlay(&out.WaveringThreshold, b.WaveringThreshold)
	overlay(&out.ConfidentThreshold, b.ConfidentThreshold)
	return &out
}

func mergeEnvironment(a, b *EnvironmentCfg) *EnvironmentCfg {
	if b == nil {
		return a
	}
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	overlay(&out.TerrainModifierMax, b.TerrainModifierMax)
	overlay(&out.FortificationDefenseMultiplier, b.FortificationDefenseMultiplier)
	return &out
}

func mergeDuration(a, b *DurationCfg) *DurationCfg {
	if b == nil {
		return a
	}
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	overlay(&out.Base, b.Base)
	overlay(&out.Max, b.Max)
	return &out
}

func mergeRewards(a, b *RewardsCfg) *RewardsCfg {
	if b == nil {
		return a
	}
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	overlay(&out.ExperiencePerCasualtyDealt, b.ExperiencePerCasualtyDealt)
	overlay(&out.PrestigePerStrengthDefeated, b.PrestigePerStrengthDefeated)
	return &out
}

// overlay replaces *dst when src is set.
func overlay(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
