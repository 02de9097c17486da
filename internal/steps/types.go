package steps

// Kind identifies how a questionnaire step is presented.
type Kind string

const (
	KindSingleChoice        Kind = "single-choice"
	KindMultiChoice         Kind = "multi-choice"
	KindGroupedChoice       Kind = "grouped-choice"
	KindCategorizedCheckbox Kind = "categorized-checkbox"
	KindDescribedChoice     Kind = "described-choice"
)

// Step describes one page of the dynamically assembled questionnaire.
// Exactly one of Options, Described, Categories, or Groups is populated,
// according to Type. Steps are immutable once returned; the consuming UI
// owns them.
type Step struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Type     Kind   `json:"type"`

	Options    []string          `json:"options,omitempty"`
	Described  []DescribedOption `json:"described_options,omitempty"`
	Categories []Category        `json:"categories,omitempty"`
	Groups     []Group           `json:"groups,omitempty"`

	// Suggested lists the options detected as relevant so the UI can
	// surface them; AutoSelected lists options the UI should pre-check.
	Suggested    []string `json:"suggested,omitempty"`
	AutoSelected []string `json:"auto_selected,omitempty"`

	// HasOther marks steps offering an "other, please specify" free-text
	// escape hatch, with OtherKey naming the answer field it feeds.
	HasOther bool   `json:"has_other,omitempty"`
	OtherKey string `json:"other_key,omitempty"`
}
