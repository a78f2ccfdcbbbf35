// Package content holds the product-defined tables behind the Gloww score,
// the condition heuristic, the cycle phases and the organ-health bands.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

var (
	ErrInvalidCatalog = errors.New("invalid content catalog")

	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

type Bounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (bounds Bounds) Clamp(value int) int {
	if value < bounds.Min {
		return bounds.Min
	}
	if value > bounds.Max {
		return bounds.Max
	}
	return value
}

type CycleBracket struct {
	Bracket     string `yaml:"bracket"`
	Weight      int    `yaml:"weight"`
	TypicalDays int    `yaml:"typical_days"`
}

type RecentAdjustments struct {
	FewBelow      int `yaml:"few_below"`
	FewBonus      int `yaml:"few_bonus"`
	ManyAbove     int `yaml:"many_above"`
	ManyPenalty   int `yaml:"many_penalty"`
	NoSevereBonus int `yaml:"no_severe_bonus"`
	SevereAbove   int `yaml:"severe_above"`
	SeverePenalty int `yaml:"severe_penalty"`
}

type HistoryAdjustments struct {
	ImprovingBonus   int `yaml:"improving_bonus"`
	WorseningPenalty int `yaml:"worsening_penalty"`
	NewPenalty       int `yaml:"new_penalty"`
}

type ScoreTable struct {
	Base              int                `yaml:"base"`
	General           Bounds             `yaml:"general"`
	Onboarding        Bounds             `yaml:"onboarding"`
	Age               map[string]int     `yaml:"age"`
	CycleLength       []CycleBracket     `yaml:"cycle_length"`
	Lifestyle         map[string]int     `yaml:"lifestyle"`
	Goals             map[string]int     `yaml:"goals"`
	SeverityPenalties map[string]int     `yaml:"severity_penalties"`
	SymptomSeverity   map[string]string  `yaml:"symptom_severity"`
	Recent            RecentAdjustments  `yaml:"recent"`
	History           HistoryAdjustments `yaml:"history"`
}

type Condition struct {
	Label     string   `yaml:"label"`
	Threshold int      `yaml:"threshold"`
	Penalty   int      `yaml:"penalty"`
	Symptoms  []string `yaml:"symptoms"`
}

// Phase covers cycle days From..To inclusive; a nil To is open-ended.
type Phase struct {
	Name            string   `yaml:"name"`
	From            int      `yaml:"from"`
	To              *int     `yaml:"to"`
	Description     string   `yaml:"description"`
	Symptoms        []string `yaml:"symptoms"`
	Recommendations []string `yaml:"recommendations"`
}

func (phase Phase) Contains(cycleDay int) bool {
	if cycleDay < phase.From {
		return false
	}
	return phase.To == nil || cycleDay <= *phase.To
}

type StatusThreshold struct {
	Min   int    `yaml:"min"`
	Label string `yaml:"label"`
}

type OrganBand struct {
	Key      string            `yaml:"key"`
	Label    string            `yaml:"label"`
	Inverse  bool              `yaml:"inverse"`
	Offset   int               `yaml:"offset"`
	Min      int               `yaml:"min"`
	Max      int               `yaml:"max"`
	Statuses []StatusThreshold `yaml:"statuses"`
}

func (band OrganBand) Bounds() Bounds {
	return Bounds{Min: band.Min, Max: band.Max}
}

type Catalog struct {
	Score      ScoreTable  `yaml:"score"`
	Conditions []Condition `yaml:"conditions"`
	Phases     []Phase     `yaml:"phases"`
	Organs     []OrganBand `yaml:"organs"`

	age             map[string]int
	cycleLength     map[string]CycleBracket
	lifestyle       map[string]int
	goals           map[string]int
	symptomSeverity map[string]string
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("content: embedded catalog: %v", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content catalog: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(raw, catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	catalog.index()
	return catalog, nil
}

func (catalog *Catalog) Validate() error {
	if catalog.Score.General.Min > catalog.Score.General.Max {
		return fmt.Errorf("%w: general score bounds inverted", ErrInvalidCatalog)
	}
	if catalog.Score.Onboarding.Min > catalog.Score.Onboarding.Max {
		return fmt.Errorf("%w: onboarding score bounds inverted", ErrInvalidCatalog)
	}
	for bucket := range catalog.Score.SeverityPenalties {
		if !isSeverityBucket(bucket) {
			return fmt.Errorf("%w: unknown severity bucket %q", ErrInvalidCatalog, bucket)
		}
	}
	for tag, bucket := range catalog.Score.SymptomSeverity {
		if !isSeverityBucket(bucket) {
			return fmt.Errorf("%w: symptom %q has unknown severity %q", ErrInvalidCatalog, tag, bucket)
		}
	}

	for _, condition := range catalog.Conditions {
		if strings.TrimSpace(condition.Label) == "" {
			return fmt.Errorf("%w: condition without label", ErrInvalidCatalog)
		}
		if condition.Threshold <= 0 || condition.Threshold > len(condition.Symptoms) {
			return fmt.Errorf("%w: condition %q threshold %d out of range", ErrInvalidCatalog, condition.Label, condition.Threshold)
		}
	}

	if err := validatePhases(catalog.Phases); err != nil {
		return err
	}

	for _, organ := range catalog.Organs {
		if organ.Min > organ.Max {
			return fmt.Errorf("%w: organ %q bounds inverted", ErrInvalidCatalog, organ.Key)
		}
		if len(organ.Statuses) == 0 {
			return fmt.Errorf("%w: organ %q has no statuses", ErrInvalidCatalog, organ.Key)
		}
		for index := 1; index < len(organ.Statuses); index++ {
			if organ.Statuses[index].Min >= organ.Statuses[index-1].Min {
				return fmt.Errorf("%w: organ %q statuses must be in descending order", ErrInvalidCatalog, organ.Key)
			}
		}
		if last := organ.Statuses[len(organ.Statuses)-1]; last.Min > organ.Min {
			return fmt.Errorf("%w: organ %q lowest status starts above band minimum", ErrInvalidCatalog, organ.Key)
		}
	}
	return nil
}

func validatePhases(phases []Phase) error {
	if len(phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidCatalog)
	}
	if phases[0].From != 0 {
		return fmt.Errorf("%w: first phase must start at day 0", ErrInvalidCatalog)
	}
	for index, phase := range phases {
		last := index == len(phases)-1
		if last {
			if phase.To != nil {
				return fmt.Errorf("%w: last phase %q must be open-ended", ErrInvalidCatalog, phase.Name)
			}
			continue
		}
		if phase.To == nil {
			return fmt.Errorf("%w: phase %q is open-ended but not last", ErrInvalidCatalog, phase.Name)
		}
		if *phase.To < phase.From {
			return fmt.Errorf("%w: phase %q ends before it starts", ErrInvalidCatalog, phase.Name)
		}
		if next := phases[index+1]; next.From != *phase.To+1 {
			return fmt.Errorf("%w: phase %q must start right after %q", ErrInvalidCatalog, next.Name, phase.Name)
		}
	}
	return nil
}

func (catalog *Catalog) index() {
	catalog.age = normalizeWeights(catalog.Score.Age)
	catalog.lifestyle = normalizeWeights(catalog.Score.Lifestyle)
	catalog.goals = normalizeWeights(catalog.Score.Goals)

	catalog.cycleLength = make(map[string]CycleBracket, len(catalog.Score.CycleLength))
	for _, bracket := range catalog.Score.CycleLength {
		catalog.cycleLength[NormalizeTag(bracket.Bracket)] = bracket
	}

	catalog.symptomSeverity = make(map[string]string, len(catalog.Score.SymptomSeverity))
	for tag, bucket := range catalog.Score.SymptomSeverity {
		catalog.symptomSeverity[NormalizeTag(tag)] = bucket
	}
}

func (catalog *Catalog) AgeWeight(bracket string) int {
	return catalog.age[NormalizeTag(bracket)]
}

func (catalog *Catalog) CycleLengthWeight(bracket string) int {
	return catalog.cycleLength[NormalizeTag(bracket)].Weight
}

// TypicalCycleDays returns the representative length of a bracket, or 0 when
// the bracket carries no usable length ("Irregular", "Not sure", unknown).
func (catalog *Catalog) TypicalCycleDays(bracket string) int {
	return catalog.cycleLength[NormalizeTag(bracket)].TypicalDays
}

func (catalog *Catalog) LifestyleWeight(bracket string) int {
	return catalog.lifestyle[NormalizeTag(bracket)]
}

func (catalog *Catalog) GoalWeight(goal string) int {
	return catalog.goals[NormalizeTag(goal)]
}

// SymptomPenalty returns the per-symptom penalty for a tag's severity bucket.
func (catalog *Catalog) SymptomPenalty(tag string) int {
	bucket, ok := catalog.symptomSeverity[NormalizeTag(tag)]
	if !ok {
		return 0
	}
	return catalog.Score.SeverityPenalties[bucket]
}

func (catalog *Catalog) PhaseForDay(cycleDay int) (Phase, bool) {
	for _, phase := range catalog.Phases {
		if phase.Contains(cycleDay) {
			return phase, true
		}
	}
	return Phase{}, false
}

func NormalizeTag(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeWeights(source map[string]int) map[string]int {
	normalized := make(map[string]int, len(source))
	for key, weight := range source {
		normalized[NormalizeTag(key)] = weight
	}
	return normalized
}

func isSeverityBucket(bucket string) bool {
	switch bucket {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}
