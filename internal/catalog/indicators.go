package catalog

import "indicomp/internal/models"

// Indicator names used in presets and tests.
const (
	GDPPerCapita      = "GDP per capita (current US$)"
	GDPGrowth         = "GDP growth (annual %)"
	Inflation         = "Inflation, consumer prices (annual %)"
	Unemployment      = "Unemployment, total (% of total labor force)"
	Trade             = "Trade (% of GDP)"
	Population        = "Population, total"
	PopulationGrowth  = "Population growth (annual %)"
	UrbanPopulation   = "Urban population (% of total population)"
	AgeDependency     = "Age dependency ratio (% of working-age population)"
	SchoolEnrollment  = "School enrollment, primary (% net)"
	Literacy          = "Literacy rate, adult total (% of people ages 15 and above)"
	ResearchSpending  = "Research and development expenditure (% of GDP)"
	JournalArticles   = "Scientific and technical journal articles"
	LifeExpectancy    = "Life expectancy at birth, total (years)"
	InfantMortality   = "Mortality rate, infant (per 1,000 live births)"
	HealthSpending    = "Health expenditure, total (% of GDP)"
	HospitalBeds      = "Hospital beds (per 1,000 people)"
	EducationSpending = "Government expenditure on education, total (% of GDP)"
	MilitarySpending  = "Military expenditure (% of GDP)"
	InternetUsers     = "Internet users (per 100 people)"
	CO2Emissions      = "CO2 emissions (metric tons per capita)"
)

var indicators = []models.Indicator{
	{Name: GDPPerCapita, Code: "NY.GDP.PCAP.CD", Group: models.GroupEconomic, Category: models.CategoryEconomic,
		Description: "Gross domestic product divided by midyear population, in current US dollars"},
	{Name: GDPGrowth, Code: "NY.GDP.MKTP.KD.ZG", Group: models.GroupEconomic, Category: models.CategoryEconomic,
		Description: "Annual percentage growth rate of GDP at market prices"},
	{Name: Inflation, Code: "FP.CPI.TOTL.ZG", Group: models.GroupEconomic,
		Description: "Annual percentage change in consumer price index"},
	{Name: Unemployment, Code: "SL.UEM.TOTL.ZS", Group: models.GroupEconomic,
		Description: "Share of the labor force that is without work but available and seeking employment"},
	{Name: Trade, Code: "NE.TRD.GNFS.ZS", Group: models.GroupEconomic},

	{Name: Population, Code: "SP.POP.TOTL", Group: models.GroupDemographics,
		Description: "Total population based on the de facto definition"},
	{Name: PopulationGrowth, Code: "SP.POP.GROW", Group: models.GroupDemographics,
		Description: "Annual population growth rate for year t"},
	{Name: UrbanPopulation, Code: "SP.URB.TOTL.IN.ZS", Group: models.GroupDemographics,
		Description: "People living in urban areas as percentage of total population"},
	{Name: AgeDependency, Code: "SP.POP.DPND", Group: models.GroupDemographics},

	{Name: SchoolEnrollment, Code: "SE.PRM.NENR", Group: models.GroupEducation, Category: models.CategoryEducation,
		Description: "Net enrollment rate in primary education"},
	{Name: Literacy, Code: "SE.ADT.LITR.ZS", Group: models.GroupEducation, Category: models.CategoryEducation},
	{Name: ResearchSpending, Code: "GB.XPD.RSDV.GD.ZS", Group: models.GroupEducation},
	{Name: JournalArticles, Code: "IP.JRN.ARTC.SC", Group: models.GroupEducation},

	{Name: LifeExpectancy, Code: "SP.DYN.LE00.IN", Group: models.GroupHealth, Category: models.CategoryHealth,
		Description: "Number of years a newborn infant would live if prevailing patterns of mortality continue"},
	{Name: InfantMortality, Code: "SP.DYN.IMRT.IN", Group: models.GroupHealth},
	{Name: HealthSpending, Code: "SH.XPD.CHEX.GD.ZS", Group: models.GroupHealth, Category: models.CategoryHealth,
		Description: "Current health expenditure as percentage of GDP"},
	{Name: HospitalBeds, Code: "SH.MED.BEDS.ZS", Group: models.GroupHealth},

	{Name: EducationSpending, Code: "SE.XPD.TOTL.GD.ZS", Group: models.GroupGovernance, Category: models.CategoryEducation},
	{Name: MilitarySpending, Code: "MS.MIL.XPND.GD.ZS", Group: models.GroupGovernance},
	{Name: InternetUsers, Code: "IT.NET.USER.ZS", Group: models.GroupGovernance,
		Description: "Individuals who have used the Internet in the last 3 months"},
	{Name: CO2Emissions, Code: "EN.ATM.CO2E.PC", Group: models.GroupGovernance,
		Description: "Carbon dioxide emissions per capita"},
}

var indicatorIndex = func() map[string]models.Indicator {
	idx := make(map[string]models.Indicator, len(indicators))
	for _, ind := range indicators {
		idx[ind.Name] = ind
	}

	return idx
}()

var groupOrder = []models.Group{
	models.GroupEconomic,
	models.GroupDemographics,
	models.GroupEducation,
	models.GroupHealth,
	models.GroupGovernance,
}

// Indicators returns every known indicator in catalog order.
func Indicators() []models.Indicator {
	return append([]models.Indicator(nil), indicators...)
}

// LookupIndicator finds an indicator by display name.
func LookupIndicator(name string) (models.Indicator, bool) {
	ind, ok := indicatorIndex[name]

	return ind, ok
}

// Groups returns the indicator groups in display order.
func Groups() []models.Group {
	return append([]models.Group(nil), groupOrder...)
}

// IndicatorsIn returns the indicators of one group in catalog order.
func IndicatorsIn(group models.Group) []models.Indicator {
	var out []models.Indicator

	for _, ind := range indicators {
		if ind.Group == group {
			out = append(out, ind)
		}
	}

	return out
}

// Preset is a named quick selection of indicators.
type Preset struct {
	Name       string
	Indicators []string
}

var presets = []Preset{
	{Name: "Economic Focus", Indicators: []string{GDPPerCapita, GDPGrowth, Unemployment}},
	{Name: "Social Focus", Indicators: []string{LifeExpectancy, PopulationGrowth, UrbanPopulation}},
	{Name: "Development", Indicators: []string{SchoolEnrollment, HealthSpending, InternetUsers}},
	{Name: "Comprehensive", Indicators: []string{GDPPerCapita, LifeExpectancy, SchoolEnrollment, UrbanPopulation}},
}

// Presets returns the quick-select presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: p.Name, Indicators: append([]string(nil), p.Indicators...)}
	}

	return out
}
