package geo

// Town is one entry in the static town table.
type Town struct {
	Name       string
	Province   string
	Lat        float64
	Lon        float64
	Population int
}

// towns is a static table of Canadian population centres in the provinces
// where convective warnings are most common. Coordinates are town centres;
// populations are rounded census figures, used only for ranking.
var towns = []Town{
	// Ontario
	{Name: "Toronto", Province: "ON", Lat: 43.6532, Lon: -79.3832, Population: 2794356},
	{Name: "Ottawa", Province: "ON", Lat: 45.4215, Lon: -75.6972, Population: 1017449},
	{Name: "Hamilton", Province: "ON", Lat: 43.2557, Lon: -79.8711, Population: 569353},
	{Name: "London", Province: "ON", Lat: 42.9849, Lon: -81.2453, Population: 422324},
	{Name: "Kitchener", Province: "ON", Lat: 43.4516, Lon: -80.4925, Population: 256885},
	{Name: "Windsor", Province: "ON", Lat: 42.3149, Lon: -83.0364, Population: 229660},
	{Name: "Barrie", Province: "ON", Lat: 44.3894, Lon: -79.6903, Population: 147829},
	{Name: "Guelph", Province: "ON", Lat: 43.5448, Lon: -80.2482, Population: 143740},
	{Name: "Kingston", Province: "ON", Lat: 44.2312, Lon: -76.4860, Population: 132485},
	{Name: "Thunder Bay", Province: "ON", Lat: 48.3809, Lon: -89.2477, Population: 108843},
	{Name: "Sudbury", Province: "ON", Lat: 46.4917, Lon: -80.9930, Population: 166004},
	{Name: "Peterborough", Province: "ON", Lat: 44.3091, Lon: -78.3197, Population: 83651},
	{Name: "Sault Ste. Marie", Province: "ON", Lat: 46.5219, Lon: -84.3461, Population: 72051},
	{Name: "Sarnia", Province: "ON", Lat: 42.9745, Lon: -82.4066, Population: 72047},
	{Name: "Orillia", Province: "ON", Lat: 44.6082, Lon: -79.4207, Population: 33411},
	{Name: "Midland", Province: "ON", Lat: 44.7501, Lon: -79.8847, Population: 17817},
	{Name: "Orangeville", Province: "ON", Lat: 43.9199, Lon: -80.0943, Population: 30167},
	{Name: "Shelburne", Province: "ON", Lat: 44.0787, Lon: -80.2041, Population: 8994},
	{Name: "Alliston", Province: "ON", Lat: 44.1530, Lon: -79.8664, Population: 22000},
	{Name: "Newmarket", Province: "ON", Lat: 44.0592, Lon: -79.4613, Population: 87942},

	// Prairies
	{Name: "Calgary", Province: "AB", Lat: 51.0447, Lon: -114.0719, Population: 1306784},
	{Name: "Edmonton", Province: "AB", Lat: 53.5461, Lon: -113.4938, Population: 1010899},
	{Name: "Red Deer", Province: "AB", Lat: 52.2681, Lon: -113.8112, Population: 100844},
	{Name: "Lethbridge", Province: "AB", Lat: 49.6956, Lon: -112.8451, Population: 98406},
	{Name: "Medicine Hat", Province: "AB", Lat: 50.0405, Lon: -110.6764, Population: 63271},
	{Name: "Saskatoon", Province: "SK", Lat: 52.1332, Lon: -106.6700, Population: 266141},
	{Name: "Regina", Province: "SK", Lat: 50.4452, Lon: -104.6189, Population: 226404},
	{Name: "Moose Jaw", Province: "SK", Lat: 50.3934, Lon: -105.5519, Population: 33665},
	{Name: "Swift Current", Province: "SK", Lat: 50.2851, Lon: -107.7972, Population: 16750},
	{Name: "Winnipeg", Province: "MB", Lat: 49.8951, Lon: -97.1384, Population: 749607},
	{Name: "Brandon", Province: "MB", Lat: 49.8485, Lon: -99.9501, Population: 51313},
	{Name: "Portage la Prairie", Province: "MB", Lat: 49.9728, Lon: -98.2920, Population: 13270},

	// Quebec and Atlantic
	{Name: "Montreal", Province: "QC", Lat: 45.5019, Lon: -73.5674, Population: 1762949},
	{Name: "Quebec City", Province: "QC", Lat: 46.8131, Lon: -71.2075, Population: 549459},
	{Name: "Gatineau", Province: "QC", Lat: 45.4765, Lon: -75.7013, Population: 291041},
	{Name: "Moncton", Province: "NB", Lat: 46.0878, Lon: -64.7782, Population: 79470},
	{Name: "Fredericton", Province: "NB", Lat: 45.9636, Lon: -66.6431, Population: 63116},
	{Name: "Halifax", Province: "NS", Lat: 44.6488, Lon: -63.5752, Population: 439819},
	{Name: "Charlottetown", Province: "PE", Lat: 46.2382, Lon: -63.1311, Population: 38809},
	{Name: "St. John's", Province: "NL", Lat: 47.5615, Lon: -52.7126, Population: 110525},

	// British Columbia and the North
	{Name: "Vancouver", Province: "BC", Lat: 49.2827, Lon: -123.1207, Population: 662248},
	{Name: "Kelowna", Province: "BC", Lat: 49.8880, Lon: -119.4960, Population: 144576},
	{Name: "Kamloops", Province: "BC", Lat: 50.6745, Lon: -120.3273, Population: 97902},
	{Name: "Prince George", Province: "BC", Lat: 53.9171, Lon: -122.7497, Population: 76708},
	{Name: "Whitehorse", Province: "YT", Lat: 60.7212, Lon: -135.0568, Population: 28201},
	{Name: "Yellowknife", Province: "NT", Lat: 62.4540, Lon: -114.3718, Population: 20340},
	{Name: "Iqaluit", Province: "NU", Lat: 63.7467, Lon: -68.5170, Population: 7429},
}
