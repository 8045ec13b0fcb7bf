package travel

import "github.com/hupe1980/travelmesh/tool"

// NewFlightSearchTool exposes the flight inventory as a callable tool for the
// flight specialist.
func NewFlightSearchTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"search_flights",
		"Search for flight options to a destination, optionally bounded by price and stops",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"destination": map[string]any{
					"type":        "string",
					"description": "Destination city or airport code, e.g. 'Tokyo' or 'NRT'",
				},
				"max_price": map[string]any{
					"type":        "number",
					"description": "Maximum ticket price in USD; omit for no limit",
				},
				"max_stops": map[string]any{
					"type":        "integer",
					"description": "Maximum number of stops; omit to allow any",
				},
			},
			"required": []string{"destination"},
		},
		func(_ *tool.Context, args map[string]any) (any, error) {
			destination, _ := args["destination"].(string)
			maxPrice := floatArg(args, "max_price", 0)
			maxStops := intArg(args, "max_stops", -1)

			results := FlightSearch(destination, maxPrice, maxStops)

			return map[string]any{
				"flights": results,
				"search_params": map[string]any{
					"destination": destination,
					"max_price":   maxPrice,
					"max_stops":   maxStops,
				},
				"total_results": len(results),
			}, nil
		},
	)
}

// NewFareRulesTool exposes fare conditions per flight.
func NewFareRulesTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"get_fare_rules",
		"Get change, cancellation and baggage rules for a flight from search results",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"flight_id": map[string]any{
					"type":        "string",
					"description": "Flight ID from search results, e.g. 'AA123'",
				},
			},
			"required": []string{"flight_id"},
		},
		func(_ *tool.Context, args map[string]any) (any, error) {
			flightID, _ := args["flight_id"].(string)

			rules, ok := FareRulesFor(flightID)
			if !ok {
				return nil, tool.NewToolError("get_fare_rules", "unknown flight id: "+flightID, "NOT_FOUND")
			}

			return map[string]any{
				"flight_id": flightID,
				"rules":     rules,
			}, nil
		},
	)
}

// NewHotelSearchTool exposes the hotel inventory for the hotel specialist.
func NewHotelSearchTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"search_hotels",
		"Search for hotels in a destination with optional nightly budget and category filters",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"destination": map[string]any{
					"type":        "string",
					"description": "City or neighborhood, e.g. 'Tokyo' or 'Shibuya Tokyo'",
				},
				"budget_max": map[string]any{
					"type":        "number",
					"description": "Maximum price per night in USD; omit for no limit",
				},
				"hotel_type": map[string]any{
					"type":        "string",
					"description": "Category preference: luxury, business, budget",
				},
			},
			"required": []string{"destination"},
		},
		func(_ *tool.Context, args map[string]any) (any, error) {
			destination, _ := args["destination"].(string)
			budgetMax := floatArg(args, "budget_max", 0)
			hotelType, _ := args["hotel_type"].(string)

			results := HotelSearch(destination, budgetMax, hotelType)

			return map[string]any{
				"hotels": results,
				"search_params": map[string]any{
					"destination": destination,
					"budget_max":  budgetMax,
					"hotel_type":  hotelType,
				},
				"total_results": len(results),
			}, nil
		},
	)
}

// NewHotelAvailabilityTool exposes per-hotel room availability and pricing.
func NewHotelAvailabilityTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"check_availability",
		"Check room availability and total pricing for a hotel across a stay",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hotel_id": map[string]any{
					"type":        "string",
					"description": "Hotel ID from search results, e.g. 'HTL_001'",
				},
				"check_in": map[string]any{
					"type":        "string",
					"description": "Check-in date in YYYY-MM-DD format",
				},
				"check_out": map[string]any{
					"type":        "string",
					"description": "Check-out date in YYYY-MM-DD format",
				},
			},
			"required": []string{"hotel_id", "check_in", "check_out"},
		},
		func(_ *tool.Context, args map[string]any) (any, error) {
			hotelID, _ := args["hotel_id"].(string)
			checkIn, _ := args["check_in"].(string)
			checkOut, _ := args["check_out"].(string)

			offers, nights, ok := HotelAvailability(hotelID, checkIn, checkOut)
			if !ok {
				return map[string]any{
					"hotel_id":  hotelID,
					"available": false,
					"reason":    "Hotel not found",
				}, nil
			}

			roomTypes := make([]map[string]any, 0, len(offers))
			for _, offer := range offers {
				roomTypes = append(roomTypes, map[string]any{
					"type":            offer.Type,
					"available_rooms": offer.AvailableRooms,
					"price_per_night": offer.PricePerNight,
					"total_price":     offer.PricePerNight * float64(nights),
					"includes":        offer.Includes,
					"cancellation":    offer.Cancellation,
				})
			}

			return map[string]any{
				"hotel_id":   hotelID,
				"available":  len(roomTypes) > 0,
				"check_in":   checkIn,
				"check_out":  checkOut,
				"nights":     nights,
				"room_types": roomTypes,
			}, nil
		},
	)
}

// NewActivitySearchTool exposes the activity inventory for the activity
// specialist.
func NewActivitySearchTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"search_activities",
		"Search for activities and attractions in a destination by category and budget level",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"destination": map[string]any{
					"type":        "string",
					"description": "City or location name",
				},
				"categories": map[string]any{
					"type":        "array",
					"description": "Activity categories: cultural, food, sightseeing, nightlife",
				},
				"budget_level": map[string]any{
					"type":        "string",
					"description": "Budget level: budget, mid-range, luxury, all",
				},
			},
			"required": []string{"destination"},
		},
		func(_ *tool.Context, args map[string]any) (any, error) {
			destination, _ := args["destination"].(string)
			budgetLevel, _ := args["budget_level"].(string)
			categories := stringSliceArg(args, "categories")

			results := ActivitySearch(destination, categories, budgetLevel)

			return map[string]any{
				"activities": results,
				"search_params": map[string]any{
					"destination":  destination,
					"categories":   categories,
					"budget_level": budgetLevel,
				},
				"total_results": len(results),
			}, nil
		},
	)
}

// NewRestaurantSearchTool exposes dining recommendations.
func NewRestaurantSearchTool() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"search_restaurants",
		"Get restaurant recommendations for a destination by cuisine and price range",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"destination": map[string]any{
					"type":        "string",
					"description": "City or neighborhood",
				},
				"cuisine_type": map[string]any{
					"type":        "string",
					"description": "Cuisine type (Japanese, Italian, ...) or 'local'",
				},
				"price_range": map[string]any{
					"type":        "string",
					"description": "Price range: budget, moderate, upscale, fine-dining, all",
				},
			},
			"required": []string{"destination"},
		},
		func(_ *tool.Context, args map[string]any) (any, error) {
			destination, _ := args["destination"].(string)
			cuisine, _ := args["cuisine_type"].(string)
			priceRange, _ := args["price_range"].(string)

			results := RestaurantSearch(destination, cuisine, priceRange)

			return map[string]any{
				"restaurants": results,
				"search_params": map[string]any{
					"destination":  destination,
					"cuisine_type": cuisine,
					"price_range":  priceRange,
				},
				"total_results": len(results),
			}, nil
		},
	)
}

// FlightTools returns the toolset wired into the flight specialist.
func FlightTools() []tool.Tool {
	return []tool.Tool{NewFlightSearchTool(), NewFareRulesTool(), tool.NewRememberPreferenceTool()}
}

// HotelTools returns the toolset wired into the hotel specialist.
func HotelTools() []tool.Tool {
	return []tool.Tool{NewHotelSearchTool(), NewHotelAvailabilityTool(), tool.NewRememberPreferenceTool()}
}

// ActivityTools returns the toolset wired into the activity specialist.
func ActivityTools() []tool.Tool {
	return []tool.Tool{NewActivitySearchTool(), NewRestaurantSearchTool(), tool.NewRememberPreferenceTool()}
}

// floatArg reads a numeric argument, tolerating int and float JSON decodings.
func floatArg(args map[string]any, key string, fallback float64) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return fallback
	}
}

func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

// stringSliceArg reads a string array argument, tolerating []any from JSON.
func stringSliceArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
