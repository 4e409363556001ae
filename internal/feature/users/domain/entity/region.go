package entity

// Region is the closed enumeration of shard regions.
type Region string

const (
	RegionCanada        Region = "CA"
	RegionIndia         Region = "IN"
	RegionUnitedStates  Region = "US"
	RegionEurope        Region = "EU"
	RegionAustralia     Region = "AU"
	RegionUnitedKingdom Region = "UK"
	RegionJapan         Region = "JP"
	RegionChina         Region = "CN"
	RegionBrazil        Region = "BR"
	RegionSouthAfrica   Region = "ZA"
	RegionMiddleEast    Region = "ME"
	RegionSoutheastAsia Region = "SEA"
	RegionGlobal        Region = "GLOBAL"
	RegionAsiaPacific   Region = "APAC"
	RegionLatinAmerica  Region = "LATAM"
	RegionAfrica        Region = "AF"
	RegionRussia        Region = "RU"
	RegionMexico        Region = "MX"
	RegionArgentina     Region = "AR"
	RegionGermany       Region = "DE"
	RegionFrance        Region = "FR"
	RegionItaly         Region = "IT"
	RegionSpain         Region = "ES"
	RegionNetherlands   Region = "NL"
	RegionSweden        Region = "SE"
	RegionNorway        Region = "NO"
	RegionDenmark       Region = "DK"
	RegionPoland        Region = "PL"
	RegionSwitzerland   Region = "CH"
	RegionBelgium       Region = "BE"
	RegionAustria       Region = "AT"
	RegionFinland       Region = "FI"
	RegionIreland       Region = "IE"
	RegionPortugal      Region = "PT"
	RegionTurkey        Region = "TR"
	RegionIsrael        Region = "IL"
)

// DefaultRegion is assigned when no region is specified.
const DefaultRegion = RegionGlobal

var regions = map[Region]struct{}{
	RegionCanada: {}, RegionIndia: {}, RegionUnitedStates: {}, RegionEurope: {},
	RegionAustralia: {}, RegionUnitedKingdom: {}, RegionJapan: {}, RegionChina: {},
	RegionBrazil: {}, RegionSouthAfrica: {}, RegionMiddleEast: {}, RegionSoutheastAsia: {},
	RegionGlobal: {}, RegionAsiaPacific: {}, RegionLatinAmerica: {}, RegionAfrica: {},
	RegionRussia: {}, RegionMexico: {}, RegionArgentina: {}, RegionGermany: {},
	RegionFrance: {}, RegionItaly: {}, RegionSpain: {}, RegionNetherlands: {},
	RegionSweden: {}, RegionNorway: {}, RegionDenmark: {}, RegionPoland: {},
	RegionSwitzerland: {}, RegionBelgium: {}, RegionAustria: {}, RegionFinland: {},
	RegionIreland: {}, RegionPortugal: {}, RegionTurkey: {}, RegionIsrael: {},
}

// Valid reports whether r belongs to the region enumeration.
func (r Region) Valid() bool {
	_, ok := regions[r]
	return ok
}
