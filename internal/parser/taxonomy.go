package parser

// taxonomyEntry maps one built-in category to its keyword list. Entries are
// held in a slice, not a map, so that scoring iterates in a fixed order and
// score ties always resolve to the earlier entry.
type taxonomyEntry struct {
	name     string
	keywords []string
}

// expenseTaxonomy is the built-in fallback taxonomy for expense utterances.
// Static, process-lifetime data; never mutated.
var expenseTaxonomy = []taxonomyEntry{
	{"Food & Drinks", []string{
		"food", "drink", "drinks", "eat", "eating", "meal", "meals", "lunch", "dinner", "breakfast",
		"restaurant", "cafe", "coffee", "tea", "beer", "wine", "alcohol", "bar", "pub", "fast food",
		"pizza", "burger", "sandwich", "snack", "snacks", "grocery", "groceries", "supermarket",
		"market", "store", "shopping", "buy", "bought", "purchase", "purchased", "order", "ordered",
		"delivery", "takeout", "take away", "cooking", "ingredients", "recipe", "kitchen", "dining",
	}},
	{"Bills & Fees", []string{
		"bill", "bills", "fee", "fees", "payment", "pay", "paid", "rent", "rental", "mortgage",
		"electricity", "electric", "power", "gas", "water", "internet", "wifi", "phone", "mobile",
		"cable", "tv", "television", "subscription", "subscriptions", "netflix", "spotify", "youtube",
		"premium", "membership", "insurance", "tax", "taxes", "government", "official", "license",
		"permit", "fine", "penalty", "late fee", "overdue", "utilities", "service", "services",
	}},
	{"Transport", []string{
		"transport", "transportation", "travel", "trip", "journey", "bus", "train", "metro", "subway",
		"taxi", "uber", "lyft", "ride", "car", "gas", "petrol", "fuel", "parking", "toll", "tolls",
		"highway", "road", "flight", "plane", "airplane", "airport", "ticket", "tickets", "fare",
		"commute", "commuting", "drive", "driving", "vehicle", "maintenance", "repair", "repairs",
		"oil change", "tire", "tires", "registration", "dmv", "license plate", "insurance",
	}},
	{"Groceries", []string{
		"grocery", "groceries", "supermarket", "market", "store", "food", "vegetables", "fruits",
		"meat", "chicken", "beef", "pork", "fish", "seafood", "dairy", "milk", "cheese", "eggs",
		"bread", "cereal", "pasta", "rice", "cooking", "ingredients", "spices", "herbs", "organic",
		"fresh", "produce", "frozen", "canned", "beverages", "juice", "soda", "water", "household",
		"cleaning", "detergent", "soap", "shampoo", "toilet paper", "paper towels",
	}},
	{"Entertainment", []string{
		"entertainment", "fun", "movie", "movies", "cinema", "theater", "theatre", "show", "shows",
		"concert", "concerts", "music", "game", "games", "gaming", "video game", "playstation",
		"xbox", "nintendo", "steam", "app", "apps", "software", "book", "books", "magazine",
		"newspaper", "streaming", "netflix", "hulu", "disney", "amazon prime", "youtube", "twitch",
		"party", "parties", "celebration", "birthday", "anniversary", "event", "events", "festival",
		"amusement", "park", "zoo", "museum", "gallery", "art", "hobby", "hobbies", "leisure",
	}},
	{"Shopping", []string{
		"shopping", "shop", "buy", "bought", "purchase", "purchased", "store", "mall", "online",
		"amazon", "ebay", "etsy", "clothes", "clothing", "shirt", "pants", "dress", "shoes",
		"accessories", "jewelry", "watch", "bag", "purse", "wallet", "electronics", "phone",
		"laptop", "computer", "tablet", "headphones", "speaker", "camera", "gadget", "gadgets",
		"home", "furniture", "decor", "decoration", "appliance", "appliances", "kitchen", "bedroom",
		"living room", "bathroom", "garden", "outdoor", "tools", "equipment", "supplies",
	}},
	{"Gifts", []string{
		"gift", "gifts", "present", "presents", "donation", "donations", "charity", "charitable",
		"birthday", "anniversary", "wedding", "graduation", "holiday", "christmas", "valentine",
		"mother's day", "father's day", "thank you", "appreciation", "congratulations", "celebration",
		"party", "surprise", "special", "occasion", "milestone", "achievement", "reward", "prize",
	}},
	{"Health", []string{
		"health", "medical", "doctor", "dentist", "hospital", "clinic", "pharmacy", "medicine",
		"medication", "prescription", "drugs", "vitamins", "supplements", "therapy", "treatment",
		"surgery", "operation", "checkup", "examination", "test", "tests", "lab", "laboratory",
		"x-ray", "scan", "scanning", "fitness", "gym", "workout", "exercise", "yoga", "pilates",
		"massage", "spa", "wellness", "mental health", "counseling", "therapy", "psychologist",
	}},
	{"Investments", []string{
		"investment", "investments", "invest", "investing", "stock", "stocks", "shares", "equity",
		"bond", "bonds", "mutual fund", "etf", "crypto", "cryptocurrency", "bitcoin", "ethereum",
		"trading", "trader", "portfolio", "retirement", "401k", "ira", "pension", "savings",
		"deposit", "deposits", "cd", "certificate", "treasury", "dividend", "dividends", "profit",
		"capital gains", "brokerage", "robinhood", "fidelity", "vanguard", "schwab",
	}},
	{"Loans", []string{
		"loan", "loans", "borrow", "borrowed", "lend", "lent", "debt", "credit", "credit card",
		"mortgage", "car loan", "student loan", "personal loan", "payday loan", "interest",
		"principal", "payment", "installment", "monthly payment", "due", "overdue", "late",
		"collection", "debt collector", "bankruptcy", "refinance", "consolidation", "balance",
		"minimum payment", "credit score", "credit report", "fico", "apr", "annual percentage",
	}},
	{"Car", []string{
		"car", "vehicle", "auto", "automobile", "truck", "suv", "motorcycle", "bike", "bicycle",
		"gas", "petrol", "fuel", "oil", "maintenance", "repair", "repairs", "service", "services",
		"tire", "tires", "brake", "brakes", "engine", "transmission", "battery", "alternator",
		"insurance", "registration", "dmv", "license plate", "inspection", "emissions", "parking",
		"toll", "tolls", "highway", "road", "drive", "driving", "commute", "commuting",
	}},
	{"Work", []string{
		"work", "job", "employment", "salary", "wage", "wages", "paycheck", "pay", "income",
		"earnings", "bonus", "commission", "overtime", "freelance", "contract", "consulting",
		"business", "office", "meeting", "conference", "travel", "expense", "expenses", "reimbursement",
		"client", "customers", "project", "deadline", "presentation", "training", "education",
		"certification", "license", "professional", "career", "promotion", "raise", "benefits",
	}},
	{"Restaurant", []string{
		"restaurant", "dining", "dine", "eat", "eating", "meal", "meals", "lunch", "dinner",
		"breakfast", "brunch", "cafe", "coffee", "tea", "bar", "pub", "grill", "steakhouse",
		"italian", "chinese", "japanese", "mexican", "indian", "thai", "french", "mediterranean",
		"seafood", "pizza", "burger", "sandwich", "salad", "soup", "appetizer", "dessert",
		"wine", "beer", "cocktail", "drink", "drinks", "tip", "tips", "service", "waiter",
		"waitress", "chef", "kitchen", "menu", "reservation", "takeout", "delivery",
	}},
	{"Family", []string{
		"family", "children", "kids", "child", "baby", "toddler", "teenager", "teen", "son",
		"daughter", "parent", "parents", "mother", "father", "mom", "dad", "grandmother",
		"grandfather", "grandma", "grandpa", "sister", "brother", "sibling", "siblings",
		"cousin", "uncle", "aunt", "nephew", "niece", "relative", "relatives", "household",
		"home", "house", "apartment", "rent", "mortgage", "utilities", "maintenance", "repairs",
	}},
	{"Social Life", []string{
		"social", "friends", "friend", "buddy", "pal", "colleague", "colleagues", "coworker",
		"coworkers", "party", "parties", "gathering", "meetup", "date", "dating", "relationship",
		"wedding", "birthday", "anniversary", "celebration", "event", "events", "concert",
		"show", "movie", "dinner", "lunch", "coffee", "drinks", "bar", "club", "dancing",
		"karaoke", "game night", "board games", "video games", "sports", "team", "league",
	}},
	{"Order Food", []string{
		"order", "ordered", "ordering", "delivery", "takeout", "take away", "food delivery",
		"uber eats", "doordash", "grubhub", "postmates", "caviar", "seamless", "foodpanda",
		"just eat", "deliveroo", "pizza", "burger", "sandwich", "chinese", "indian", "thai",
		"mexican", "italian", "japanese", "sushi", "fast food", "restaurant", "meal", "meals",
		"lunch", "dinner", "breakfast", "snack", "snacks", "appetizer", "dessert", "drink",
		"drinks", "beverage", "beverages", "tip", "tips", "service fee", "delivery fee",
	}},
	{"Travel", []string{
		"travel", "trip", "vacation", "holiday", "journey", "adventure", "flight", "plane",
		"airplane", "airport", "hotel", "motel", "hostel", "airbnb", "booking", "reservation",
		"ticket", "tickets", "passport", "visa", "luggage", "baggage", "suitcase", "backpack",
		"tour", "tours", "sightseeing", "attraction", "attractions", "museum", "gallery",
		"beach", "mountain", "city", "country", "international", "domestic", "cruise", "train",
		"bus", "car rental", "taxi", "uber", "lyft", "transportation", "commute",
	}},
	{"Fitness", []string{
		"fitness", "gym", "workout", "exercise", "training", "sport", "sports", "running",
		"jogging", "walking", "cycling", "biking", "swimming", "yoga", "pilates", "crossfit",
		"weightlifting", "bodybuilding", "cardio", "strength", "endurance", "flexibility",
		"personal trainer", "coach", "coaching", "class", "classes", "membership", "subscription",
		"equipment", "gear", "clothes", "shoes", "nutrition", "supplements", "protein", "vitamins",
	}},
	{"Self-development", []string{
		"self development", "self-development", "personal development", "learning", "education",
		"course", "courses", "class", "classes", "training", "workshop", "seminar", "conference",
		"book", "books", "ebook", "audiobook", "podcast", "podcasts", "video", "videos",
		"tutorial", "tutorials", "online", "offline", "certification", "certificate", "diploma",
		"degree", "masterclass", "coaching", "mentoring", "skill", "skills", "hobby", "hobbies",
		"language", "languages", "programming", "coding", "design", "art", "music", "writing",
	}},
	{"Clothes", []string{
		"clothes", "clothing", "fashion", "outfit", "outfits", "shirt", "shirts", "pants",
		"jeans", "dress", "dresses", "skirt", "skirts", "shorts", "jacket", "jackets",
		"coat", "coats", "sweater", "sweaters", "hoodie", "hoodies", "t-shirt", "tshirt",
		"blouse", "blouses", "suit", "suits", "tie", "ties", "shoes", "boots", "sneakers",
		"sandals", "heels", "flats", "socks", "underwear", "lingerie", "accessories", "jewelry",
		"watch", "watches", "bag", "bags", "purse", "purses", "wallet", "wallets", "belt", "belts",
	}},
	{"Beauty", []string{
		"beauty", "cosmetics", "makeup", "make-up", "skincare", "skin care", "hair", "haircut",
		"hair color", "dye", "dying", "styling", "perm", "straightening", "curling", "blow dry",
		"manicure", "pedicure", "nail", "nails", "polish", "spa", "massage", "facial", "treatment",
		"treatments", "salon", "barber", "stylist", "shampoo", "conditioner", "soap", "lotion",
		"cream", "serum", "moisturizer", "sunscreen", "perfume", "cologne", "fragrance", "deodorant",
	}},
	{"Education", []string{
		"education", "school", "university", "college", "academy", "institute", "tuition", "fees",
		"books", "textbooks", "supplies", "materials", "equipment", "laptop", "computer", "tablet",
		"software", "course", "courses", "class", "classes", "lesson", "lessons", "tutoring",
		"tutor", "teacher", "professor", "instructor", "training", "workshop", "seminar", "conference",
		"certification", "certificate", "diploma", "degree", "master's", "phd", "research", "thesis",
	}},
	{"Pet", []string{
		"pet", "pets", "dog", "dogs", "cat", "cats", "bird", "birds", "fish", "hamster", "rabbit",
		"veterinary", "vet", "animal", "animals", "food", "treats", "toys", "collar", "leash",
		"cage", "crate", "bed", "bedding", "litter", "grooming", "bath", "shampoo", "medicine",
		"vaccination", "vaccinations", "checkup", "surgery", "operation", "insurance", "training",
		"walking", "boarding", "daycare", "kennel", "adoption", "rescue", "shelter",
	}},
	{"Sports", []string{
		"sports", "sport", "athletic", "athletics", "team", "teams", "league", "leagues", "game",
		"games", "match", "matches", "tournament", "tournaments", "competition", "competitions",
		"football", "soccer", "basketball", "baseball", "tennis", "golf", "hockey", "volleyball",
		"swimming", "running", "cycling", "biking", "skiing", "snowboarding", "surfing", "climbing",
		"boxing", "martial arts", "karate", "judo", "taekwondo", "equipment", "gear", "uniform",
		"jersey", "shoes", "cleats", "helmet", "gloves", "ball", "racket", "club", "stick",
	}},
}

// incomeTaxonomy is the built-in fallback taxonomy for income utterances.
var incomeTaxonomy = []taxonomyEntry{
	{"Work", []string{
		"salary", "wage", "wages", "paycheck", "pay", "income", "earnings", "bonus", "commission",
		"overtime", "freelance", "contract", "consulting", "business", "profit", "revenue", "sales",
		"tips", "gratuity", "stipend", "allowance", "pension", "retirement", "benefits", "reimbursement",
		"refund", "rebate", "cashback", "dividend", "dividends", "interest", "investment", "returns",
	}},
	{"Investments", []string{
		"investment", "investments", "invest", "investing", "stock", "stocks", "shares", "equity",
		"bond", "bonds", "mutual fund", "etf", "crypto", "cryptocurrency", "bitcoin", "ethereum",
		"trading", "trader", "portfolio", "retirement", "401k", "ira", "pension", "savings",
		"deposit", "deposits", "cd", "certificate", "treasury", "dividend", "dividends", "profit",
		"capital gains", "brokerage", "robinhood", "fidelity", "vanguard", "schwab", "returns",
	}},
	{"Gifts", []string{
		"gift", "gifts", "present", "presents", "donation", "donations", "charity", "charitable",
		"birthday", "anniversary", "wedding", "graduation", "holiday", "christmas", "valentine",
		"mother's day", "father's day", "thank you", "appreciation", "congratulations", "celebration",
		"party", "surprise", "special", "occasion", "milestone", "achievement", "reward", "prize",
		"inheritance", "bequest", "legacy", "windfall", "lottery", "winning", "jackpot",
	}},
	{"Family", []string{
		"family", "children", "kids", "child", "baby", "toddler", "teenager", "teen", "son",
		"daughter", "parent", "parents", "mother", "father", "mom", "dad", "grandmother",
		"grandfather", "grandma", "grandpa", "sister", "brother", "sibling", "siblings",
		"cousin", "uncle", "aunt", "nephew", "niece", "relative", "relatives", "household",
		"home", "house", "apartment", "rent", "rental", "property", "real estate", "lease",
	}},
	{"Other", []string{
		"other", "miscellaneous", "misc", "extra", "additional", "side", "part-time", "temporary",
		"seasonal", "casual", "odd job", "gig", "gigs", "task", "tasks", "project", "projects",
		"service", "services", "help", "assistance", "support", "favor", "favors", "exchange",
		"barter", "trade", "swap", "sell", "selling", "sale", "sales", "auction", "garage sale",
	}},
}

// Taxonomy returns the built-in category names and keyword lists for the
// given direction. The returned slices are shared; callers must not modify
// them.
func Taxonomy(dir Direction) map[string][]string {
	table := expenseTaxonomy
	if dir == Income {
		table = incomeTaxonomy
	}
	out := make(map[string][]string, len(table))
	for _, entry := range table {
		out[entry.name] = entry.keywords
	}
	return out
}
