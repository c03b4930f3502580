package gallery

// Category classifies an installation.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
	CategoryMaintenance Category = "maintenance"
)

// ValidCategory reports whether c is a known filter value.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryAll, CategoryResidential, CategoryCommercial, CategoryMaintenance:
		return true
	}
	return false
}

// Installation is one catalog entry. The catalog is compiled in; entries are
// never created or mutated at runtime.
type Installation struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Date        string   `json:"date"` // display string, not parsed
	Category    Category `json:"category"`
	MediaItems  []string `json:"media_items"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Features    []string `json:"features"`
	BeforeImage string   `json:"before_image,omitempty"`
	AfterImage  string   `json:"after_image,omitempty"`
	// IsVideo means MediaItems holds exactly one playable video reference.
	IsVideo bool `json:"is_video"`
}

// HasCompare reports whether the entry carries both before and after images.
func (ins *Installation) HasCompare() bool {
	return ins.BeforeImage != "" && ins.AfterImage != ""
}

// Catalog holds every installation in declaration order. Filtered views keep
// this order; nothing re-sorts by date or any other key.
var Catalog = []Installation{
	{
		ID:          1,
		Title:       "Recent Installation in Warranwood",
		Location:    "Warranwood",
		Date:        "December 2024",
		Category:    CategoryResidential,
		MediaItems:  []string{"/images/gallery/warranwood-installation.jpg"},
		Description: "A recent installation in Warranwood.",
		Unit:        "Fujitsu Split System",
		Features:    []string{"Professional Installation", "Clean Finish", "Optimal Positioning", "Customer Satisfaction"},
	},
	{
		ID:          2,
		Title:       "5x Fujitsu Split Systems - Double Story Townhouse",
		Location:    "Burwood",
		Date:        "December 2024",
		Category:    CategoryResidential,
		MediaItems:  []string{"/videos/gallery/burwood-townhouse.mp4"},
		Description: "5x Fujitsu split systems installed at a double story townhouse in Burwood, very happy with the finished product.",
		Unit:        "5x Fujitsu Split Systems",
		Features:    []string{"Multi-Zone Installation", "Double Story Coverage", "Professional Finish", "Customer Satisfaction"},
		IsVideo:     true,
	},
	{
		ID:          3,
		Title:       "Fujitsu 26kW 3 Phase Ducted System",
		Location:    "Commercial Installation",
		Date:        "December 2024",
		Category:    CategoryCommercial,
		MediaItems:  []string{"/images/gallery/fujitsu-26kw-ducted.jpg"},
		Description: "Fujitsu 26kW 3 Phase Ducted RCAC fit off coming along.",
		Unit:        "Fujitsu 26kW 3 Phase Ducted System",
		Features:    []string{"Commercial Grade", "3 Phase Power", "High Capacity", "Professional Installation"},
	},
	{
		ID:          4,
		Title:       "Mitsubishi Heavy Industries for Ray White",
		Location:    "Ray White Real Estate",
		Date:        "November 2024",
		Category:    CategoryCommercial,
		MediaItems:  []string{"/images/gallery/mitsubishi-heavy-raywhite.jpg"},
		Description: "Supply & install of 2x Mitsubishi Heavy Industries reverse cycle split systems completed for Ray White Real Estate.",
		Unit:        "2x Mitsubishi Heavy Industries Split Systems",
		Features:    []string{"Commercial Installation", "Reverse Cycle", "Real Estate Office", "Professional Service"},
	},
	{
		ID:          5,
		Title:       "2x Panasonic Systems in Rowville",
		Location:    "Rowville",
		Date:        "November 2024",
		Category:    CategoryResidential,
		MediaItems:  []string{"/images/gallery/panasonic-rowville.jpg"},
		Description: "2x Panasonic 2.5kW reverse cycle split system installations completed for a property in Rowville.",
		Unit:        "2x Panasonic 2.5kW Split Systems",
		Features:    []string{"Dual Installation", "Energy Efficient", "Reverse Cycle", "Clean Installation"},
	},
	{
		ID:          6,
		Title:       "4x Systems Weekend Installation",
		Location:    "Shepparton",
		Date:        "November 2024",
		Category:    CategoryResidential,
		MediaItems:  []string{"/images/gallery/hisense-shepparton.jpg"},
		Description: "4x reverse cycle split system installations this weekend in Shepparton.",
		Unit:        "4x Hisense Split Systems",
		Features:    []string{"Weekend Service", "Multiple Units", "Reverse Cycle", "Efficient Installation"},
	},
}

// Filter returns the catalog entries matching cat, in declaration order.
// CategoryAll returns the full catalog.
func Filter(cat Category) []Installation {
	if cat == CategoryAll {
		out := make([]Installation, len(Catalog))
		copy(out, Catalog)
		return out
	}
	var out []Installation
	for _, ins := range Catalog {
		if ins.Category == cat {
			out = append(out, ins)
		}
	}
	return out
}

// Counts returns the number of entries per filter value, including the
// "all" total, for the filter chips.
func Counts() map[Category]int {
	counts := map[Category]int{
		CategoryAll:         len(Catalog),
		CategoryResidential: 0,
		CategoryCommercial:  0,
		CategoryMaintenance: 0,
	}
	for _, ins := range Catalog {
		counts[ins.Category]++
	}
	return counts
}

// Lookup returns the catalog entry with the given id.
func Lookup(id int) (*Installation, bool) {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i], true
		}
	}
	return nil, false
}
