package footprint

import (
	"fmt"
	"math"
	"time"
)

// Scope1Activities holds direct-combustion quantities for one reporting
// period. A zero field means the activity did not occur; it produces no
// breakdown line.
type Scope1Activities struct {
	NaturalGasKwh      float64 `yaml:"natural_gas_kwh,omitempty"      json:"natural_gas_kwh,omitempty"`
	HeatingOilLitres   float64 `yaml:"heating_oil_litres,omitempty"   json:"heating_oil_litres,omitempty"`
	LPGLitres          float64 `yaml:"lpg_litres,omitempty"           json:"lpg_litres,omitempty"`
	PetrolLitres       float64 `yaml:"petrol_litres,omitempty"        json:"petrol_litres,omitempty"`
	DieselLitres       float64 `yaml:"diesel_litres,omitempty"        json:"diesel_litres,omitempty"`
	RefrigerantR410aKg float64 `yaml:"refrigerant_r410a_kg,omitempty" json:"refrigerant_r410a_kg,omitempty"`
}

// Scope2Activities holds purchased-energy quantities.
type Scope2Activities struct {
	ElectricityKwh     float64 `yaml:"electricity_kwh,omitempty"      json:"electricity_kwh,omitempty"`
	DistrictHeatingKwh float64 `yaml:"district_heating_kwh,omitempty" json:"district_heating_kwh,omitempty"`
}

// Scope3Activities holds indirect value-chain quantities.
type Scope3Activities struct {
	BusinessTravelCarKm  float64 `yaml:"business_travel_car_km,omitempty"  json:"business_travel_car_km,omitempty"`
	BusinessTravelRailKm float64 `yaml:"business_travel_rail_km,omitempty" json:"business_travel_rail_km,omitempty"`
	BusinessTravelAirKm  float64 `yaml:"business_travel_air_km,omitempty"  json:"business_travel_air_km,omitempty"`
	EmployeeCommutingKm  float64 `yaml:"employee_commuting_km,omitempty"   json:"employee_commuting_km,omitempty"`
	WasteLandfillKg      float64 `yaml:"waste_landfill_kg,omitempty"       json:"waste_landfill_kg,omitempty"`
	WaterSupplyM3        float64 `yaml:"water_supply_m3,omitempty"         json:"water_supply_m3,omitempty"`
	PurchasedPaperKg     float64 `yaml:"purchased_paper_kg,omitempty"      json:"purchased_paper_kg,omitempty"`
	FreightRoadTonneKm   float64 `yaml:"freight_road_tonne_km,omitempty"   json:"freight_road_tonne_km,omitempty"`
}

// ActivityInputs is one business's raw usage for a reporting period.
// It is created fresh per calculation request and never retained by the
// engine.
type ActivityInputs struct {
	PeriodStart time.Time `yaml:"period_start" json:"period_start"`
	PeriodEnd   time.Time `yaml:"period_end"   json:"period_end"`

	// EmployeesCount must be positive; per-employee intensity is derived
	// from it.
	EmployeesCount int `yaml:"employees_count" json:"employees_count"`

	// FloorAreaSqm is optional. Zero means "no data": per-floor-area
	// intensity is then absent from the result, not reported as zero.
	FloorAreaSqm float64 `yaml:"floor_area_sqm,omitempty" json:"floor_area_sqm,omitempty"`

	Scope1 Scope1Activities `yaml:"scope1,omitempty" json:"scope1,omitempty"`
	Scope2 Scope2Activities `yaml:"scope2,omitempty" json:"scope2,omitempty"`
	Scope3 Scope3Activities `yaml:"scope3,omitempty" json:"scope3,omitempty"`
}

// activityLine pairs an activity kind with its declared quantity.
type activityLine struct {
	kind     ActivityKind
	quantity float64
}

// lines returns every activity quantity in fixed enumeration order,
// including zero quantities. Callers filter as needed.
func (in *ActivityInputs) lines() []activityLine {
	return []activityLine{
		{ActivityNaturalGas, in.Scope1.NaturalGasKwh},
		{ActivityHeatingOil, in.Scope1.HeatingOilLitres},
		{ActivityLPG, in.Scope1.LPGLitres},
		{ActivityPetrol, in.Scope1.PetrolLitres},
		{ActivityDiesel, in.Scope1.DieselLitres},
		{ActivityRefrigerant, in.Scope1.RefrigerantR410aKg},
		{ActivityElectricity, in.Scope2.ElectricityKwh},
		{ActivityDistrictHeating, in.Scope2.DistrictHeatingKwh},
		{ActivityBusinessTravelCar, in.Scope3.BusinessTravelCarKm},
		{ActivityBusinessTravelRail, in.Scope3.BusinessTravelRailKm},
		{ActivityBusinessTravelAir, in.Scope3.BusinessTravelAirKm},
		{ActivityEmployeeCommuting, in.Scope3.EmployeeCommutingKm},
		{ActivityWasteLandfill, in.Scope3.WasteLandfillKg},
		{ActivityWaterSupply, in.Scope3.WaterSupplyM3},
		{ActivityPurchasedPaper, in.Scope3.PurchasedPaperKg},
		{ActivityFreightRoad, in.Scope3.FreightRoadTonneKm},
	}
}

// Validate checks the input bundle before any calculation. Errors name
// the offending field so callers can surface actionable messages.
func (in *ActivityInputs) Validate() error {
	if in.EmployeesCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrEmployeesNotPositive, in.EmployeesCount)
	}

	if math.IsInf(in.FloorAreaSqm, 0) || math.IsNaN(in.FloorAreaSqm) {
		return fmt.Errorf("%w: floor_area_sqm", ErrNonFiniteQuantity)
	}
	if in.FloorAreaSqm < 0 {
		return fmt.Errorf("%w: floor_area_sqm", ErrNegativeQuantity)
	}

	if !in.PeriodStart.IsZero() && !in.PeriodEnd.IsZero() && in.PeriodEnd.Before(in.PeriodStart) {
		return fmt.Errorf("%w: %s before %s",
			ErrInvalidPeriod,
			in.PeriodEnd.Format(time.DateOnly),
			in.PeriodStart.Format(time.DateOnly))
	}

	for _, line := range in.lines() {
		if math.IsInf(line.quantity, 0) || math.IsNaN(line.quantity) {
			return fmt.Errorf("%w: %s", ErrNonFiniteQuantity, line.kind)
		}
		if line.quantity < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeQuantity, line.kind)
		}
	}

	return nil
}
