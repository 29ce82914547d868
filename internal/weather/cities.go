package weather

import "sort"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var cityCoordinates = map[string]Coordinates{
	"Chennai, Tamil Nadu":    {Lat: 13.0827, Lon: 80.2707},
	"Mumbai, Maharashtra":    {Lat: 19.076, Lon: 72.8777},
	"Delhi, Delhi":           {Lat: 28.7041, Lon: 77.1025},
	"Bangalore, Karnataka":   {Lat: 12.9716, Lon: 77.5946},
	"Kolkata, West Bengal":   {Lat: 22.5726, Lon: 88.3639},
	"Hyderabad, Telangana":   {Lat: 17.385, Lon: 78.4867},
	"Pune, Maharashtra":      {Lat: 18.5204, Lon: 73.8567},
	"Ahmedabad, Gujarat":     {Lat: 23.0225, Lon: 72.5714},
	"Jaipur, Rajasthan":      {Lat: 26.9124, Lon: 75.7873},
	"Surat, Gujarat":         {Lat: 21.1702, Lon: 72.8311},
	"Lucknow, Uttar Pradesh": {Lat: 26.8467, Lon: 80.9462},
	"Kanpur, Uttar Pradesh":  {Lat: 26.4499, Lon: 80.3319},
	"Nagpur, Maharashtra":    {Lat: 21.1458, Lon: 79.0882},
	"Patna, Bihar":           {Lat: 25.5941, Lon: 85.1376},
	"Indore, Madhya Pradesh": {Lat: 22.7196, Lon: 75.8577},
	"Bhopal, Madhya Pradesh": {Lat: 23.2599, Lon: 77.4126},
	"Ludhiana, Punjab":       {Lat: 30.901, Lon: 75.8573},
	"Agra, Uttar Pradesh":    {Lat: 27.1767, Lon: 78.0081},
	"Vadodara, Gujarat":      {Lat: 22.3072, Lon: 73.1812},
	"Coimbatore, Tamil Nadu": {Lat: 11.0168, Lon: 76.9558},
}

const DefaultLocation = "Chennai, Tamil Nadu"

func Lookup(location string) (Coordinates, bool) {
	c, ok := cityCoordinates[location]
	return c, ok
}

// Locations returns the supported locations sorted by name.
func Locations() []string {
	out := make([]string, 0, len(cityCoordinates))
	for k := range cityCoordinates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
