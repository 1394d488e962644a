// Package footprint converts raw business-activity quantities into a
// carbon footprint broken down by reporting scope and activity line.
//
// The package is a pure computation core: it performs no I/O, keeps no
// state between calls, and depends only on the immutable factor table
// passed into each calculation.
package footprint

import "fmt"

// ActivityKind identifies one reportable business activity. The set of
// kinds is closed: the input bundle and the factor table share this
// enumeration, so an activity that the table cannot price is a dataset
// gap, never a silent lookup miss.
type ActivityKind string

// Scope 1 activity kinds (direct combustion and fugitive emissions).
const (
	ActivityNaturalGas  ActivityKind = "natural_gas_kwh"
	ActivityHeatingOil  ActivityKind = "heating_oil_litres"
	ActivityLPG         ActivityKind = "lpg_litres"
	ActivityPetrol      ActivityKind = "petrol_litres"
	ActivityDiesel      ActivityKind = "diesel_litres"
	ActivityRefrigerant ActivityKind = "refrigerant_r410a_kg"
)

// Scope 2 activity kinds (purchased energy).
const (
	ActivityElectricity     ActivityKind = "electricity_kwh"
	ActivityDistrictHeating ActivityKind = "district_heating_kwh"
)

// Scope 3 activity kinds (indirect value-chain activity).
const (
	ActivityBusinessTravelCar  ActivityKind = "business_travel_car_km"
	ActivityBusinessTravelRail ActivityKind = "business_travel_rail_km"
	ActivityBusinessTravelAir  ActivityKind = "business_travel_air_km"
	ActivityEmployeeCommuting  ActivityKind = "employee_commuting_km"
	ActivityWasteLandfill      ActivityKind = "waste_landfill_kg"
	ActivityWaterSupply        ActivityKind = "water_supply_m3"
	ActivityPurchasedPaper     ActivityKind = "purchased_paper_kg"
	ActivityFreightRoad        ActivityKind = "freight_road_tonne_km"
)

// Scope is a greenhouse-gas accounting tier.
type Scope int

// GHG Protocol reporting scopes.
const (
	Scope1 Scope = 1 // direct combustion
	Scope2 Scope = 2 // purchased energy
	Scope3 Scope = 3 // indirect value chain
)

// String returns a human-readable representation of the Scope.
func (s Scope) String() string {
	switch s {
	case Scope1:
		return "Scope 1"
	case Scope2:
		return "Scope 2"
	case Scope3:
		return "Scope 3"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// scopeByKind maps every recognized activity kind to its reporting scope.
//
//nolint:gochecknoglobals // Constant lookup table
var scopeByKind = map[ActivityKind]Scope{
	ActivityNaturalGas:  Scope1,
	ActivityHeatingOil:  Scope1,
	ActivityLPG:         Scope1,
	ActivityPetrol:      Scope1,
	ActivityDiesel:      Scope1,
	ActivityRefrigerant: Scope1,

	ActivityElectricity:     Scope2,
	ActivityDistrictHeating: Scope2,

	ActivityBusinessTravelCar:  Scope3,
	ActivityBusinessTravelRail: Scope3,
	ActivityBusinessTravelAir:  Scope3,
	ActivityEmployeeCommuting:  Scope3,
	ActivityWasteLandfill:      Scope3,
	ActivityWaterSupply:        Scope3,
	ActivityPurchasedPaper:     Scope3,
	ActivityFreightRoad:        Scope3,
}

// ScopeOf returns the reporting scope for the given activity kind.
// The second return value is false for unrecognized kinds.
func ScopeOf(kind ActivityKind) (Scope, bool) {
	scope, ok := scopeByKind[kind]
	return scope, ok
}

// IsRecognizedKind reports whether kind belongs to the closed activity
// enumeration shared by inputs and factor tables.
func IsRecognizedKind(kind ActivityKind) bool {
	_, ok := scopeByKind[kind]
	return ok
}

// AllKinds returns every recognized activity kind in scope order.
// The order is fixed so that derived output (breakdown lines, rendered
// tables) is deterministic across calls.
func AllKinds() []ActivityKind {
	return []ActivityKind{
		ActivityNaturalGas,
		ActivityHeatingOil,
		ActivityLPG,
		ActivityPetrol,
		ActivityDiesel,
		ActivityRefrigerant,
		ActivityElectricity,
		ActivityDistrictHeating,
		ActivityBusinessTravelCar,
		ActivityBusinessTravelRail,
		ActivityBusinessTravelAir,
		ActivityEmployeeCommuting,
		ActivityWasteLandfill,
		ActivityWaterSupply,
		ActivityPurchasedPaper,
		ActivityFreightRoad,
	}
}
