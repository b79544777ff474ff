package distance

// Coordinates of major European cities used for quick distance
// estimation, keyed by city name. Mostly capitals.
type Coordinates struct {
	Lat     float64
	Lon     float64
	Country string
}

var CityCoordinates = map[string]Coordinates{
	// Western Europe
	"Amsterdam":  {52.3676, 4.9041, "NL"},
	"Athens":     {37.9838, 23.7275, "GR"},
	"Berlin":     {52.52, 13.405, "DE"},
	"Brussels":   {50.8503, 4.3517, "BE"},
	"Copenhagen": {55.6761, 12.5683, "DK"},
	"Dublin":     {53.3498, -6.2603, "IE"},
	"Helsinki":   {60.1699, 24.9384, "FI"},
	"Lisbon":     {38.7223, -9.1393, "PT"},
	"London":     {51.5074, -0.1278, "UK"},
	"Luxembourg": {49.6116, 6.1319, "LU"},
	"Madrid":     {40.4168, -3.7038, "ES"},
	"Oslo":       {59.9139, 10.7522, "NO"},
	"Paris":      {48.8566, 2.3522, "FR"},
	"Reykjavik":  {64.1466, -21.9426, "IS"},
	"Rome":       {41.9028, 12.4964, "IT"},
	"Stockholm":  {59.3293, 18.0686, "SE"},
	"Vienna":     {48.2082, 16.3738, "AT"},

	// Eastern Europe
	"Belgrade":   {44.7866, 20.4489, "RS"},
	"Bratislava": {48.1486, 17.1077, "SK"},
	"Bucharest":  {44.4268, 26.1025, "RO"},
	"Budapest":   {47.4979, 19.0402, "HU"},
	"Prague":     {50.0755, 14.4378, "CZ"},
	"Riga":       {56.9496, 24.1052, "LV"},
	"Sofia":      {42.6977, 23.3219, "BG"},
	"Tallinn":    {59.437, 24.7536, "EE"},
	"Vilnius":    {54.6872, 25.2797, "LT"},
	"Warsaw":     {52.2297, 21.0122, "PL"},
	"Zagreb":     {45.815, 15.9819, "HR"},

	// Southern Europe
	"Barcelona": {41.3851, 2.1734, "ES"},
	"Ljubljana": {46.0569, 14.5058, "SI"},
	"Nicosia":   {35.1856, 33.3823, "CY"},
	"Valletta":  {35.8989, 14.5146, "MT"},

	// Partner countries
	"Ankara":   {39.9334, 32.8597, "TR"},
	"Istanbul": {41.0082, 28.9784, "TR"},
	"Sarajevo": {43.8563, 18.4131, "BA"},
	"Skopje":   {41.9973, 21.4280, "MK"},
	"Tirana":   {41.3275, 19.8187, "AL"},
}
