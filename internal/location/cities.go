package location

import "regexp"

// cityEntry is one gazetteer pattern with its canonical city name.
type cityEntry struct {
	pattern *regexp.Regexp
	name    string
}

// cityGazetteer is checked in order and the first match wins. Multi-word
// names come before single-word names, and single-word names before 2-3
// letter abbreviations, so "Los Angeles" is never shadowed by "la" and "la"
// never matches inside another word.
var cityGazetteer = []cityEntry{
	// Multi-word cities (most specific)
	{regexp.MustCompile(`(?i)\bwhitehouse station\b`), "Whitehouse Station"},
	{regexp.MustCompile(`(?i)\bsan francisco\b`), "San Francisco"},
	{regexp.MustCompile(`(?i)\blos angeles\b`), "Los Angeles"},
	{regexp.MustCompile(`(?i)\bnew york\b`), "New York"},
	{regexp.MustCompile(`(?i)\bsan diego\b`), "San Diego"},
	{regexp.MustCompile(`(?i)\bsan jose\b`), "San Jose"},
	{regexp.MustCompile(`(?i)\bsan antonio\b`), "San Antonio"},
	{regexp.MustCompile(`(?i)\bfort worth\b`), "Fort Worth"},
	{regexp.MustCompile(`(?i)\bkansas city\b`), "Kansas City"},
	{regexp.MustCompile(`(?i)\blas vegas\b`), "Las Vegas"},
	// Single-word cities
	{regexp.MustCompile(`(?i)\bboston\b`), "Boston"},
	{regexp.MustCompile(`(?i)\bchicago\b`), "Chicago"},
	{regexp.MustCompile(`(?i)\bhouston\b`), "Houston"},
	{regexp.MustCompile(`(?i)\bdallas\b`), "Dallas"},
	{regexp.MustCompile(`(?i)\baustin\b`), "Austin"},
	{regexp.MustCompile(`(?i)\bseattle\b`), "Seattle"},
	{regexp.MustCompile(`(?i)\bdenver\b`), "Denver"},
	{regexp.MustCompile(`(?i)\batlanta\b`), "Atlanta"},
	{regexp.MustCompile(`(?i)\bmiami\b`), "Miami"},
	{regexp.MustCompile(`(?i)\bphiladelphia\b`), "Philadelphia"},
	{regexp.MustCompile(`(?i)\bphoenix\b`), "Phoenix"},
	{regexp.MustCompile(`(?i)\bportland\b`), "Portland"},
	{regexp.MustCompile(`(?i)\bdetroit\b`), "Detroit"},
	{regexp.MustCompile(`(?i)\bcharlotte\b`), "Charlotte"},
	{regexp.MustCompile(`(?i)\bmemphis\b`), "Memphis"},
	{regexp.MustCompile(`(?i)\bbaltimore\b`), "Baltimore"},
	{regexp.MustCompile(`(?i)\bmilwaukee\b`), "Milwaukee"},
	{regexp.MustCompile(`(?i)\bnashville\b`), "Nashville"},
	{regexp.MustCompile(`(?i)\bsacramento\b`), "Sacramento"},
	{regexp.MustCompile(`(?i)\bminneapolis\b`), "Minneapolis"},
	// Abbreviations (least specific, checked last)
	{regexp.MustCompile(`(?i)\bsf\b`), "San Francisco"},
	{regexp.MustCompile(`(?i)\bla\b`), "Los Angeles"},
	{regexp.MustCompile(`(?i)\bnyc\b`), "New York"},
}

// coordinates holds centroid coordinates for gazetteer cities, used for the
// 50-mile proximity check.
type coordinates struct {
	lat float64
	lon float64
}

var cityCoordinates = map[string]coordinates{
	"San Francisco":      {37.7749, -122.4194},
	"Los Angeles":        {34.0522, -118.2437},
	"New York":           {40.7128, -74.0060},
	"Chicago":            {41.8781, -87.6298},
	"Houston":            {29.7604, -95.3698},
	"Phoenix":            {33.4484, -112.0742},
	"Philadelphia":       {39.9526, -75.1652},
	"San Antonio":        {29.4241, -98.4936},
	"San Diego":          {32.7157, -117.1611},
	"Dallas":             {32.7767, -96.7970},
	"Boston":             {42.3601, -71.0589},
	"Seattle":            {47.6062, -122.3321},
	"Denver":             {39.7392, -104.9903},
	"Austin":             {30.2672, -97.7431},
	"Portland":           {45.5152, -122.6784},
	"Miami":              {25.7617, -80.1918},
	"Atlanta":            {33.7490, -84.3880},
	"Las Vegas":          {36.1699, -115.1398},
	"Minneapolis":        {44.9778, -93.2650},
	"Detroit":            {42.3314, -83.0458},
	"San Jose":           {37.3382, -121.8863},
	"Nashville":          {36.1627, -86.7816},
	"Memphis":            {35.1495, -90.0490},
	"Baltimore":          {39.2904, -76.6122},
	"Milwaukee":          {43.0389, -87.9065},
	"Charlotte":          {35.2271, -80.8431},
	"Kansas City":        {39.0997, -94.5786},
	"Fort Worth":         {32.7555, -97.3308},
	"Sacramento":         {38.5816, -121.4944},
	"Whitehouse Station": {40.5576, -74.5285},
}
