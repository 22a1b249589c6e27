package types

type MenuChoice int

const (
	MenuViewAll MenuChoice = iota + 1
	MenuStatistics
	MenuCreate
	MenuEdit
	MenuDelete
	MenuExit
)

// MenuChoices lists the options in display order.
var MenuChoices = []MenuChoice{
	MenuViewAll,
	MenuStatistics,
	MenuCreate,
	MenuEdit,
	MenuDelete,
	MenuExit,
}

func (c MenuChoice) Valid() bool {
	return c >= MenuViewAll && c <= MenuExit
}

func (c MenuChoice) Label() string {
	switch c {
	case MenuViewAll:
		return "View all countries"
	case MenuStatistics:
		return "View statistics"
	case MenuCreate:
		return "Create a new country"
	case MenuEdit:
		return "Edit an existing country"
	case MenuDelete:
		return "Delete a country"
	case MenuExit:
		return "Exit"
	}
	return "Unknown"
}
