package table

// SeedSection and SeedTable describe the floor plan installed on first start.
type SeedSection struct {
	Name        string
	Description string
}

type SeedTable struct {
	Number   int
	Capacity int
	Section  string
}

const (
	SectionMainFloor   = "Main Floor"
	SectionPatio       = "Patio"
	SectionPrivateRoom = "Private Room"
)

func DefaultSections() []SeedSection {
	return []SeedSection{
		{Name: SectionMainFloor, Description: "Main dining area"},
		{Name: SectionPatio, Description: "Outdoor seating"},
		{Name: SectionPrivateRoom, Description: "For special events"},
	}
}

func DefaultTables() []SeedTable {
	return []SeedTable{
		{Number: 1, Capacity: 4, Section: SectionMainFloor},
		{Number: 2, Capacity: 4, Section: SectionMainFloor},
		{Number: 3, Capacity: 6, Section: SectionMainFloor},
		{Number: 4, Capacity: 2, Section: SectionPatio},
		{Number: 5, Capacity: 4, Section: SectionPatio},
		{Number: 6, Capacity: 8, Section: SectionPrivateRoom},
	}
}
