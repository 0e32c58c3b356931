package mock

import "github.com/poiesic/locate/core"

// Action types used across tests.
var (
	Search           = core.NewActionType("Search", "SEARCH", core.AsSearch())
	AdditionalSearch = core.NewActionType("Additional Search", "ADDITIONAL_SEARCH", core.AsSearch())
	Filter           = core.NewActionType("Filter", "FILTER", core.AsFilter())
	AdditionalFilter = core.NewActionType("Additional Filter", "ADDITIONAL_FILTER", core.AsFilter())
	CompetingFilter  = core.NewActionType("Competing Filter", "COMPETING_FILTER", core.AsFilter(),
		core.CompetingWith("SEARCH", "FILTER"))
)
