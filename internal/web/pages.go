package web

import "net/http"

// About renders the marketing about page.
func (a *App) About(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "about", nil)
}

// Contact renders the contact page.
func (a *App) Contact(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "contact", nil)
}

// CoverageArea is one service zone on the coverage map.
type CoverageArea struct {
	Name   string
	Lat    float64
	Lng    float64
	Radius int
}

// coverageAreas are the zones decoration teams currently serve.
var coverageAreas = []CoverageArea{
	{Name: "Dhaka Central", Lat: 23.8103, Lng: 90.4125, Radius: 5000},
	{Name: "Gulshan", Lat: 23.7808, Lng: 90.4153, Radius: 3000},
	{Name: "Uttara", Lat: 23.8759, Lng: 90.3795, Radius: 4000},
	{Name: "Dhanmondi", Lat: 23.7461, Lng: 90.3742, Radius: 3000},
}

type coverageData struct {
	Areas []CoverageArea
	// Local is true when the visitor appears to be in Bangladesh, so the
	// map opens centered on the service region.
	Local bool
}

// CoverageMap renders the service-area map, centered on the visitor's region
// when GeoIP places them in the home market.
func (a *App) CoverageMap(w http.ResponseWriter, r *http.Request) {
	vd := a.viewData(r, nil)
	a.render(w, r, http.StatusOK, "coverage_map", coverageData{
		Areas: coverageAreas,
		Local: vd.Country == "BD",
	})
}
