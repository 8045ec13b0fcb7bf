package travel

// Flight is a bookable flight offer in the catalog.
type Flight struct {
	FlightID      string  `json:"flight_id"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	FareClass     string  `json:"fare_class"`
}

// Hotel is an accommodation option with location and amenity details.
type Hotel struct {
	HotelID        string   `json:"hotel_id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Category       string   `json:"category"`
	StarRating     int      `json:"star_rating"`
	GuestRating    float64  `json:"guest_rating"`
	ReviewCount    int      `json:"review_count"`
	District       string   `json:"district"`
	NearestStation string   `json:"nearest_station"`
	PricePerNight  float64  `json:"price_per_night"`
	Currency       string   `json:"currency"`
	Amenities      []string `json:"amenities"`
	Highlights     []string `json:"highlights"`
	Cancellation   string   `json:"cancellation"`
}

// RoomOffer describes an available room type for a hotel on given dates.
type RoomOffer struct {
	Type           string   `json:"type"`
	AvailableRooms int      `json:"available_rooms"`
	PricePerNight  float64  `json:"price_per_night"`
	Includes       []string `json:"includes"`
	Cancellation   string   `json:"cancellation"`
}

// Activity is a bookable experience with practical details.
type Activity struct {
	ActivityID      string   `json:"activity_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	BudgetLevel     string   `json:"budget_level"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	Location        string   `json:"location"`
	Highlights      []string `json:"highlights"`
	MeetingPoint    string   `json:"meeting_point"`
	BookingRequired bool     `json:"booking_required"`
}

// Restaurant is a dining recommendation.
type Restaurant struct {
	RestaurantID        string  `json:"restaurant_id"`
	Name                string  `json:"name"`
	Cuisine             string  `json:"cuisine"`
	Specialty           string  `json:"specialty"`
	PriceRange          string  `json:"price_range"`
	Rating              float64 `json:"rating"`
	MichelinStars       int     `json:"michelin_stars,omitempty"`
	Location            string  `json:"location"`
	AverageCost         float64 `json:"average_cost"`
	Currency            string  `json:"currency"`
	DiningStyle         string  `json:"dining_style"`
	Description         string  `json:"description"`
	ReservationRequired bool    `json:"reservation_required"`
}

// flights is the fixed flight inventory. One nonstop premium option, one
// nonstop with later timing and one budget one-stop option so searches can
// differentiate by price and convenience.
var flights = []Flight{
	{
		FlightID:      "AA123",
		Airline:       "American Airlines",
		Origin:        "SFO",
		Destination:   "NRT",
		DepartureTime: "08:00",
		ArrivalTime:   "14:30",
		Price:         850,
		Currency:      "USD",
		Duration:      "11h 30m",
		Stops:         0,
		FareClass:     "economy-flex",
	},
	{
		FlightID:      "UA456",
		Airline:       "United Airlines",
		Origin:        "SFO",
		Destination:   "NRT",
		DepartureTime: "15:20",
		ArrivalTime:   "21:45",
		Price:         920,
		Currency:      "USD",
		Duration:      "11h 25m",
		Stops:         0,
		FareClass:     "economy-flex",
	},
	{
		FlightID:      "ZG025",
		Airline:       "ZIPAIR Tokyo",
		Origin:        "SFO",
		Destination:   "NRT",
		DepartureTime: "23:55",
		ArrivalTime:   "08:40",
		Price:         410,
		Currency:      "USD",
		Duration:      "13h 45m",
		Stops:         1,
		FareClass:     "economy-basic",
	},
}

// hotels is the fixed hotel inventory spanning luxury to budget.
var hotels = []Hotel{
	{
		HotelID:        "HTL_001",
		Name:           "Park Hyatt Tokyo",
		Brand:          "Hyatt",
		Category:       "luxury",
		StarRating:     5,
		GuestRating:    4.8,
		ReviewCount:    2847,
		District:       "Shinjuku",
		NearestStation: "Shinjuku Station (5 min walk)",
		PricePerNight:  450,
		Currency:       "USD",
		Amenities:      []string{"WiFi", "Indoor Pool", "Spa", "Fitness Center", "Restaurant", "Bar", "Concierge", "Room Service"},
		Highlights:     []string{"Panoramic city views", "Michelin-starred dining", "Premium location in Shinjuku"},
		Cancellation:   "Free cancellation until 48h before check-in",
	},
	{
		HotelID:        "HTL_002",
		Name:           "Shibuya Excel Hotel Tokyu",
		Brand:          "Tokyu Hotels",
		Category:       "business",
		StarRating:     4,
		GuestRating:    4.2,
		ReviewCount:    1563,
		District:       "Shibuya",
		NearestStation: "Shibuya Station (3 min walk)",
		PricePerNight:  180,
		Currency:       "USD",
		Amenities:      []string{"WiFi", "Restaurant", "Business Center", "Laundry", "24h Front Desk"},
		Highlights:     []string{"Prime Shibuya location", "Business traveler focused", "Direct station access"},
		Cancellation:   "Free cancellation until 24h before check-in",
	},
	{
		HotelID:        "HTL_003",
		Name:           "The Prince Sakura Tower Tokyo",
		Brand:          "Prince Hotels",
		Category:       "luxury",
		StarRating:     5,
		GuestRating:    4.6,
		ReviewCount:    892,
		District:       "Shinagawa/Takanawa",
		NearestStation: "Shinagawa Station (5 min walk)",
		PricePerNight:  320,
		Currency:       "USD",
		Amenities:      []string{"WiFi", "Indoor Pool", "Spa", "Multiple Restaurants", "Bar", "Fitness Center", "Garden"},
		Highlights:     []string{"Traditional Japanese garden", "Multiple dining options", "Convenient to train stations"},
		Cancellation:   "Free cancellation until 72h before check-in",
	},
	{
		HotelID:        "HTL_004",
		Name:           "Capsule Hotel Anshin Oyado",
		Brand:          "Independent",
		Category:       "budget",
		StarRating:     2,
		GuestRating:    3.9,
		ReviewCount:    567,
		District:       "Shimbashi",
		NearestStation: "Shimbashi Station (2 min walk)",
		PricePerNight:  45,
		Currency:       "USD",
		Amenities:      []string{"WiFi", "Shared Bath", "Locker", "Vending Machines", "Laundry"},
		Highlights:     []string{"Authentic Japanese capsule experience", "Budget-friendly", "Great location"},
		Cancellation:   "No free cancellation",
	},
}

// roomOffers keys hotel ids to bookable room types. Hotels without an entry
// have no live availability in the mock inventory.
var roomOffers = map[string][]RoomOffer{
	"HTL_001": {
		{Type: "Deluxe King", AvailableRooms: 3, PricePerNight: 450, Includes: []string{"Breakfast", "WiFi", "Gym access"}, Cancellation: "Free until 48h before"},
		{Type: "Deluxe Twin", AvailableRooms: 2, PricePerNight: 450, Includes: []string{"Breakfast", "WiFi", "Gym access"}, Cancellation: "Free until 48h before"},
		{Type: "Park Suite", AvailableRooms: 1, PricePerNight: 850, Includes: []string{"Breakfast", "WiFi", "Gym access", "Executive lounge", "Late checkout"}, Cancellation: "Free until 72h before"},
	},
	"HTL_002": {
		{Type: "Standard Single", AvailableRooms: 5, PricePerNight: 140, Includes: []string{"WiFi"}, Cancellation: "Free until 24h before"},
		{Type: "Superior Double", AvailableRooms: 8, PricePerNight: 180, Includes: []string{"WiFi", "City view"}, Cancellation: "Free until 24h before"},
	},
	"HTL_003": {
		{Type: "Deluxe Room", AvailableRooms: 4, PricePerNight: 320, Includes: []string{"WiFi", "Garden access"}, Cancellation: "Free until 72h before"},
	},
	"HTL_004": {
		{Type: "Standard Capsule", AvailableRooms: 12, PricePerNight: 45, Includes: []string{"WiFi", "Locker"}, Cancellation: "No free cancellation"},
	},
}

// activities is the fixed activity inventory.
var activities = []Activity{
	{
		ActivityID:      "ACT_001",
		Name:            "Senso-ji Temple & Asakusa Walking Tour",
		Category:        "cultural",
		Description:     "Explore Tokyo's oldest temple and traditional Asakusa district with a local guide",
		Duration:        "3 hours",
		Price:           45,
		Currency:        "USD",
		BudgetLevel:     "budget",
		Rating:          4.7,
		ReviewCount:     1250,
		Location:        "Asakusa, Tokyo",
		Highlights:      []string{"Historic Buddhist temple", "Traditional shopping street", "Local food tasting"},
		MeetingPoint:    "Asakusa Station Exit 1",
		BookingRequired: true,
	},
	{
		ActivityID:      "ACT_002",
		Name:            "Sushi Making Workshop with Master Chef",
		Category:        "food",
		Description:     "Learn authentic sushi making techniques from a master chef in Tokyo",
		Duration:        "2.5 hours",
		Price:           120,
		Currency:        "USD",
		BudgetLevel:     "mid-range",
		Rating:          4.9,
		ReviewCount:     890,
		Location:        "Ginza, Tokyo",
		Highlights:      []string{"Hands-on sushi making", "Fresh fish selection", "Take home recipes"},
		MeetingPoint:    "Ginza Cooking Studio",
		BookingRequired: true,
	},
	{
		ActivityID:      "ACT_003",
		Name:            "Tokyo Skytree Fast-Track Ticket",
		Category:        "sightseeing",
		Description:     "Skip-the-line access to Tokyo's tallest tower with panoramic city views",
		Duration:        "1.5 hours",
		Price:           28,
		Currency:        "USD",
		BudgetLevel:     "budget",
		Rating:          4.5,
		ReviewCount:     3200,
		Location:        "Tokyo Skytree Town",
		Highlights:      []string{"360° city views", "Fast-track entry", "Two observation decks"},
		MeetingPoint:    "Tokyo Skytree entrance",
		BookingRequired: false,
	},
	{
		ActivityID:      "ACT_004",
		Name:            "Private Geisha District Evening Tour",
		Category:        "cultural",
		Description:     "Exclusive evening tour of Gion district with geisha spotting and kaiseki dinner",
		Duration:        "4 hours",
		Price:           350,
		Currency:        "USD",
		BudgetLevel:     "luxury",
		Rating:          4.8,
		ReviewCount:     450,
		Location:        "Gion, Kyoto",
		Highlights:      []string{"Private guide", "Geisha spotting", "Traditional kaiseki dinner"},
		MeetingPoint:    "Gion Corner",
		BookingRequired: true,
	},
	{
		ActivityID:      "ACT_005",
		Name:            "Shibuya Food & Nightlife Crawl",
		Category:        "nightlife",
		Description:     "Experience Tokyo's nightlife with food stops and local bars in Shibuya",
		Duration:        "4 hours",
		Price:           85,
		Currency:        "USD",
		BudgetLevel:     "mid-range",
		Rating:          4.6,
		ReviewCount:     720,
		Location:        "Shibuya, Tokyo",
		Highlights:      []string{"3 food stops", "2 bars/izakaya", "Local nightlife experience"},
		MeetingPoint:    "Shibuya Crossing",
		BookingRequired: true,
	},
}

// restaurants is the fixed dining inventory.
var restaurants = []Restaurant{
	{
		RestaurantID:        "REST_001",
		Name:                "Sukiyabashi Jiro Honten",
		Cuisine:             "Japanese",
		Specialty:           "Sushi",
		PriceRange:          "fine-dining",
		Rating:              4.9,
		MichelinStars:       3,
		Location:            "Ginza, Tokyo",
		AverageCost:         400,
		Currency:            "USD",
		DiningStyle:         "fine-dining",
		Description:         "World-renowned sushi restaurant by master chef Jiro Ono",
		ReservationRequired: true,
	},
	{
		RestaurantID:        "REST_002",
		Name:                "Ichiran Ramen Shibuya",
		Cuisine:             "Japanese",
		Specialty:           "Ramen",
		PriceRange:          "budget",
		Rating:              4.2,
		Location:            "Shibuya, Tokyo",
		AverageCost:         12,
		Currency:            "USD",
		DiningStyle:         "casual",
		Description:         "Famous tonkotsu ramen chain with individual booth seating",
		ReservationRequired: false,
	},
	{
		RestaurantID:        "REST_003",
		Name:                "Kikunoi Honten",
		Cuisine:             "Japanese",
		Specialty:           "Kaiseki",
		PriceRange:          "fine-dining",
		Rating:              4.8,
		MichelinStars:       3,
		Location:            "Higashiyama, Kyoto",
		AverageCost:         350,
		Currency:            "USD",
		DiningStyle:         "fine-dining",
		Description:         "Traditional kaiseki restaurant in historic Kyoto setting",
		ReservationRequired: true,
	},
}

// fareRules maps fare classes to their conditions.
var fareRules = map[string]map[string]string{
	"economy-basic": {
		"changes":        "Not permitted",
		"cancellation":   "Non-refundable",
		"baggage":        "Carry-on only; checked bags for a fee",
		"seat_selection": "Assigned at check-in",
	},
	"economy-flex": {
		"changes":        "Permitted with fare difference",
		"cancellation":   "Refundable minus $150 fee",
		"baggage":        "One checked bag included",
		"seat_selection": "Free standard seat selection",
	},
}
