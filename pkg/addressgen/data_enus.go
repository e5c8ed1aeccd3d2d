package addressgen

// Built-in en_US reference tables. The entries are synthetic seed data: real
// city, county, and ZIP-prefix combinations, but nothing here is meant to be
// geographically complete.

// DefaultDataset returns the built-in en_US dataset. The returned value is
// shared and must be treated as read-only.
func DefaultDataset() *Dataset {
	return usDataset
}

var usDataset = &Dataset{
	Country: "US",

	Cardinals: []Direction{
		{Name: "North", Abbr: "N"},
		{Name: "East", Abbr: "E"},
		{Name: "South", Abbr: "S"},
		{Name: "West", Abbr: "W"},
	},
	Intercardinals: []Direction{
		{Name: "Northeast", Abbr: "NE"},
		{Name: "Northwest", Abbr: "NW"},
		{Name: "Southeast", Abbr: "SE"},
		{Name: "Southwest", Abbr: "SW"},
	},

	StreetNames: []string{
		"Maple", "Oak", "Cedar", "Pine", "Elm", "Walnut", "Chestnut", "Willow",
		"Birch", "Hickory", "Magnolia", "Sycamore", "Juniper", "Laurel", "Aspen",
		"Cherry", "Dogwood", "Main", "Church", "Washington", "Franklin",
		"Jefferson", "Lincoln", "Madison", "Lake", "River", "Spring", "Mill",
		"Hill", "Ridge", "Valley", "Meadow", "Forest", "Prairie", "Sunset",
		"Highland", "Summit", "Harbor", "Park", "High",
	},

	Descriptors: Descriptors{
		General: []StreetDescriptor{
			{Name: "Street", Abbr: "St"},
			{Name: "Avenue", Abbr: "Ave"},
			{Name: "Road", Abbr: "Rd"},
			{Name: "Drive", Abbr: "Dr"},
			{Name: "Lane", Abbr: "Ln"},
			{Name: "Court", Abbr: "Ct"},
			{Name: "Place", Abbr: "Pl"},
			{Name: "Terrace", Abbr: "Ter"},
			{Name: "Circle", Abbr: "Cir"},
			{Name: "Way", Abbr: "Way"},
		},
		Size: []StreetDescriptor{
			{Name: "Alley", Abbr: "Aly"},
			{Name: "Boulevard", Abbr: "Blvd"},
			{Name: "Expressway", Abbr: "Expy"},
			{Name: "Freeway", Abbr: "Fwy"},
			{Name: "Highway", Abbr: "Hwy"},
			{Name: "Row", Abbr: "Row"},
		},
		Function: []StreetDescriptor{
			{Name: "Park", Abbr: "Park"},
			{Name: "Plaza", Abbr: "Plz"},
			{Name: "Market", Abbr: "Mkt"},
			{Name: "Crossing", Abbr: "Xing"},
			{Name: "Station", Abbr: "Sta"},
			{Name: "Landing", Abbr: "Lndg"},
		},
	},

	UnitDescriptors: UnitDescriptors{
		Residential: []string{"Apt.", "Unit", "Room", "Lot", "Bldg."},
		Commercial:  []string{"Suite", "Ste.", "Office", "Floor", "Dept."},
	},

	Patterns: []string{
		"{street} {descriptor}",
		"{ord} {street} {descriptor}",
		"{dir} {street} {descriptor}",
		"{street} {descriptor} {dir}",
		"{ord} {descriptor}",
		"{dir} {ord} {descriptor}",
	},

	States: map[string]State{
		"AZ": {Name: "Arizona", Abbr: "AZ", Cities: []City{
			{Name: "Phoenix", County: "Maricopa County", ZipPrefix: "850"},
			{Name: "Tucson", County: "Pima County", ZipPrefix: "857"},
			{Name: "Mesa", County: "Maricopa County", ZipPrefix: "852"},
			{Name: "Flagstaff", County: "Coconino County", ZipPrefix: "860"},
		}},
		"CA": {Name: "California", Abbr: "CA", Cities: []City{
			{Name: "Los Angeles", County: "Los Angeles County", ZipPrefix: "900"},
			{Name: "San Diego", County: "San Diego County", ZipPrefix: "921"},
			{Name: "San Jose", County: "Santa Clara County", ZipPrefix: "951"},
			{Name: "Sacramento", County: "Sacramento County", ZipPrefix: "958"},
			{Name: "Fresno", County: "Fresno County", ZipPrefix: "937"},
		}},
		"CO": {Name: "Colorado", Abbr: "CO", Cities: []City{
			{Name: "Denver", County: "Denver County", ZipPrefix: "802"},
			{Name: "Boulder", County: "Boulder County", ZipPrefix: "803"},
			{Name: "Colorado Springs", County: "El Paso County", ZipPrefix: "809"},
			{Name: "Fort Collins", County: "Larimer County", ZipPrefix: "805"},
		}},
		"FL": {Name: "Florida", Abbr: "FL", Cities: []City{
			{Name: "Miami", County: "Miami-Dade County", ZipPrefix: "331"},
			{Name: "Orlando", County: "Orange County", ZipPrefix: "328"},
			{Name: "Tampa", County: "Hillsborough County", ZipPrefix: "336"},
			{Name: "Jacksonville", County: "Duval County", ZipPrefix: "322"},
		}},
		"GA": {Name: "Georgia", Abbr: "GA", Cities: []City{
			{Name: "Atlanta", County: "Fulton County", ZipPrefix: "303"},
			{Name: "Savannah", County: "Chatham County", ZipPrefix: "314"},
			{Name: "Augusta", County: "Richmond County", ZipPrefix: "309"},
			{Name: "Columbus", County: "Muscogee County", ZipPrefix: "319"},
		}},
		"IL": {Name: "Illinois", Abbr: "IL", Cities: []City{
			{Name: "Chicago", County: "Cook County", ZipPrefix: "606"},
			{Name: "Springfield", County: "Sangamon County", ZipPrefix: "627"},
			{Name: "Peoria", County: "Peoria County", ZipPrefix: "616"},
			{Name: "Rockford", County: "Winnebago County", ZipPrefix: "611"},
		}},
		"MA": {Name: "Massachusetts", Abbr: "MA", Cities: []City{
			{Name: "Boston", County: "Suffolk County", ZipPrefix: "021"},
			{Name: "Worcester", County: "Worcester County", ZipPrefix: "016"},
			{Name: "Springfield", County: "Hampden County", ZipPrefix: "011"},
			{Name: "Cambridge", County: "Middlesex County", ZipPrefix: "021"},
		}},
		"MI": {Name: "Michigan", Abbr: "MI", Cities: []City{
			{Name: "Detroit", County: "Wayne County", ZipPrefix: "482"},
			{Name: "Grand Rapids", County: "Kent County", ZipPrefix: "495"},
			{Name: "Lansing", County: "Ingham County", ZipPrefix: "489"},
			{Name: "Ann Arbor", County: "Washtenaw County", ZipPrefix: "481"},
		}},
		"NC": {Name: "North Carolina", Abbr: "NC", Cities: []City{
			{Name: "Charlotte", County: "Mecklenburg County", ZipPrefix: "282"},
			{Name: "Raleigh", County: "Wake County", ZipPrefix: "276"},
			{Name: "Durham", County: "Durham County", ZipPrefix: "277"},
			{Name: "Asheville", County: "Buncombe County", ZipPrefix: "288"},
		}},
		"NY": {Name: "New York", Abbr: "NY", Cities: []City{
			{Name: "New York", County: "New York County", ZipPrefix: "100"},
			{Name: "Buffalo", County: "Erie County", ZipPrefix: "142"},
			{Name: "Rochester", County: "Monroe County", ZipPrefix: "146"},
			{Name: "Albany", County: "Albany County", ZipPrefix: "122"},
			{Name: "Syracuse", County: "Onondaga County", ZipPrefix: "132"},
		}},
		"OH": {Name: "Ohio", Abbr: "OH", Cities: []City{
			{Name: "Columbus", County: "Franklin County", ZipPrefix: "432"},
			{Name: "Cleveland", County: "Cuyahoga County", ZipPrefix: "441"},
			{Name: "Cincinnati", County: "Hamilton County", ZipPrefix: "452"},
			{Name: "Toledo", County: "Lucas County", ZipPrefix: "436"},
		}},
		"OR": {Name: "Oregon", Abbr: "OR", Cities: []City{
			{Name: "Portland", County: "Multnomah County", ZipPrefix: "972"},
			{Name: "Salem", County: "Marion County", ZipPrefix: "973"},
			{Name: "Eugene", County: "Lane County", ZipPrefix: "974"},
		}},
		"PA": {Name: "Pennsylvania", Abbr: "PA", Cities: []City{
			{Name: "Philadelphia", County: "Philadelphia County", ZipPrefix: "191"},
			{Name: "Pittsburgh", County: "Allegheny County", ZipPrefix: "152"},
			{Name: "Harrisburg", County: "Dauphin County", ZipPrefix: "171"},
			{Name: "Allentown", County: "Lehigh County", ZipPrefix: "181"},
		}},
		"TN": {Name: "Tennessee", Abbr: "TN", Cities: []City{
			{Name: "Nashville", County: "Davidson County", ZipPrefix: "372"},
			{Name: "Memphis", County: "Shelby County", ZipPrefix: "381"},
			{Name: "Knoxville", County: "Knox County", ZipPrefix: "379"},
			{Name: "Chattanooga", County: "Hamilton County", ZipPrefix: "374"},
		}},
		"TX": {Name: "Texas", Abbr: "TX", Cities: []City{
			{Name: "Houston", County: "Harris County", ZipPrefix: "770"},
			{Name: "Dallas", County: "Dallas County", ZipPrefix: "752"},
			{Name: "Austin", County: "Travis County", ZipPrefix: "787"},
			{Name: "San Antonio", County: "Bexar County", ZipPrefix: "782"},
			{Name: "El Paso", County: "El Paso County", ZipPrefix: "799"},
		}},
		"WA": {Name: "Washington", Abbr: "WA", Cities: []City{
			{Name: "Seattle", County: "King County", ZipPrefix: "981"},
			{Name: "Spokane", County: "Spokane County", ZipPrefix: "992"},
			{Name: "Tacoma", County: "Pierce County", ZipPrefix: "984"},
			{Name: "Olympia", County: "Thurston County", ZipPrefix: "985"},
		}},
	},
}
