package travel

import (
	"sort"
	"strings"
	"time"
)

// FlightSearch filters the flight inventory. An empty destination matches
// everything; maxPrice <= 0 disables the price filter; maxStops < 0 disables
// the stops filter. Results are sorted by price ascending.
func FlightSearch(destination string, maxPrice float64, maxStops int) []Flight {
	out := make([]Flight, 0, len(flights))
	for _, f := range flights {
		if destination != "" && !matchesDestination(f.Destination, destination) {
			continue
		}
		if maxPrice > 0 && f.Price > maxPrice {
			continue
		}
		if maxStops >= 0 && f.Stops > maxStops {
			continue
		}
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })

	return out
}

// FareRulesFor returns the fare conditions for a flight's fare class. The
// second return is false when the flight id is unknown.
func FareRulesFor(flightID string) (map[string]string, bool) {
	for _, f := range flights {
		if f.FlightID == flightID {
			rules, ok := fareRules[f.FareClass]
			if !ok {
				return map[string]string{}, true
			}
			// copy so callers cannot mutate the catalog
			out := make(map[string]string, len(rules)+1)
			for k, v := range rules {
				out[k] = v
			}
			out["fare_class"] = f.FareClass
			return out, true
		}
	}

	return nil, false
}

// HotelSearch filters the hotel inventory by nightly budget and category.
// maxPerNight <= 0 disables the budget filter; an empty category matches all.
// Results are sorted by guest rating descending, matching how travelers
// typically want options presented.
func HotelSearch(destination string, maxPerNight float64, category string) []Hotel {
	out := make([]Hotel, 0, len(hotels))
	for _, h := range hotels {
		if maxPerNight > 0 && h.PricePerNight > maxPerNight {
			continue
		}
		if category != "" && !strings.EqualFold(h.Category, category) {
			continue
		}
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].GuestRating > out[j].GuestRating })

	return out
}

// HotelAvailability returns room offers for a hotel across a stay. nights is
// clamped to a minimum of 1. The second return is false for unknown hotels.
func HotelAvailability(hotelID string, checkIn, checkOut string) ([]RoomOffer, int, bool) {
	offers, ok := roomOffers[hotelID]
	if !ok {
		return nil, 0, false
	}

	nights := stayNights(checkIn, checkOut)

	out := make([]RoomOffer, len(offers))
	copy(out, offers)

	return out, nights, true
}

// ActivitySearch filters activities by category and budget level. Empty
// filters match everything; budgetLevel "all" also disables that filter.
// Results are sorted by rating descending.
func ActivitySearch(destination string, categories []string, budgetLevel string) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if len(categories) > 0 && !containsFold(categories, a.Category) {
			continue
		}
		if budgetLevel != "" && budgetLevel != "all" && !strings.EqualFold(a.BudgetLevel, budgetLevel) {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })

	return out
}

// RestaurantSearch filters restaurants by cuisine and price range. Cuisine
// "local" or "" matches everything; priceRange "all" or "" disables that
// filter.
func RestaurantSearch(destination, cuisine, priceRange string) []Restaurant {
	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if cuisine != "" && !strings.EqualFold(cuisine, "local") &&
			!strings.Contains(strings.ToLower(r.Cuisine), strings.ToLower(cuisine)) {
			continue
		}
		if priceRange != "" && priceRange != "all" && !strings.EqualFold(r.PriceRange, priceRange) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// matchesDestination accepts either an airport code or a city name; "tokyo"
// maps to NRT in the mock inventory.
func matchesDestination(code, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if strings.EqualFold(code, q) {
		return true
	}
	if strings.Contains(q, "tokyo") || strings.Contains(q, "japan") {
		return code == "NRT"
	}
	return false
}

// stayNights computes the nights between two YYYY-MM-DD dates, minimum 1.
// Unparseable dates fall back to 1 night.
func stayNights(checkIn, checkOut string) int {
	in, errIn := time.Parse("2006-01-02", checkIn)
	out, errOut := time.Parse("2006-01-02", checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}

	return nights
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
