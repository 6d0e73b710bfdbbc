package lexicon

// Default returns the stock vocabularies. Community names keep their
// original capitalization for display; matching against them is done
// case folded by the callers that need it.
func Default() *Lexicon {
	return &Lexicon{
		Scarcity: []string{
			"sold out", "sellout", "sell out", "sold-out",
			"can't get tickets", "cant get tickets", "no tickets",
			"tickets gone", "impossible to get", "instantly sold out",
			"sold out in minutes", "sold out in seconds",
			"willing to pay anything", "desperate for tickets",
			"looking for tickets", "need tickets", "want tickets",
			"resale prices", "scalpers", "stubhub prices",
			"face value", "above face", "over face",
			"waitlist", "lottery", "presale sold out",
		},
		StrongScarcity: []string{
			"sold out", "sellout", "sold-out",
			"instantly sold out", "sold out in minutes", "sold out in seconds",
			"impossible to get", "tickets gone", "presale sold out",
		},
		Hard: []string{
			"ticket", "tickets", "tix", "sold out", "sell out", "sellout", "sold-out",
			"presale", "on sale", "box office", "stubhub", "ticketmaster", "seatgeek",
			"vivid seats", "face value", "scalp", "resale", "waitlist",
			"general admission", "pit tickets", "floor seats", "standing room",
		},
		Soft: []string{
			"ticket", "tickets", "tix", "sold out", "sell out", "sellout", "sold-out",
			"show", "concert", "tour", "gig", "festival", "game", "match", "bout",
			"fight", "event", "performance", "venue", "arena", "theater", "theatre",
			"presale", "on sale", "box office", "stubhub", "ticketmaster", "seatgeek",
			"vivid seats", "face value", "scalp", "resale", "waitlist", "lottery",
			"standing room", "general admission", "pit tickets", "floor seats",
			"nosebleeds", "section", "row", "seat", "barricade",
			"comedy", "comedian", "stand-up", "standup", "open mic",
			"playoff", "championship", "finals", "derby", "rivalry",
			"rodeo", "wrestling", "boxing", "mma", "ufc", "pfl",
			"lacrosse", "rugby", "cricket", "esports",
		},
		NicheSports: []string{
			"lacrosse", "rugby", "cricket", "handball", "water polo",
			"field hockey", "curling", "fencing", "wrestling",
			"roller derby", "bull riding", "rodeo", "motocross",
			"pickleball", "disc golf", "cornhole tournament",
			"esports", "fighting game tournament", "smash bros",
			"drone racing", "arm wrestling", "strongman",
			"marathon", "triathlon", "ironman", "ultramarathon",
			"boxing undercard", "bare knuckle", "muay thai", "kickboxing",
			"minor league", "college", "high school championship",
			"wnba", "nwsl", "usl", "usfl", "xfl", "pfl",
			"indycar", "nascar truck series", "dirt track",
			"horse racing", "dog show", "cat show",
		},
		LargeVenues: []string{
			"stadium", "arena tour", "world tour",
			"msg", "madison square garden", "staples center",
			"crypto.com arena", "united center", "td garden",
			"barclays center", "chase center", "sofi stadium",
			"metlife", "at&t stadium", "allegiant stadium",
		},
		OffRegionMarkers: []string{
			"india", "mumbai", "philippines", "korea", "kpop", "k-pop",
			"japan", "tokyo", "london", "uk ", "manchester", "paris",
			"berlin", "amsterdam", "melbourne", "sydney", "australia",
			"brazil", "são paulo", "toronto", "canada", "mexico",
			"barcelona", "ubc", "okanagan",
		},
		NoiseMarkers: []string{
			"wayfair", "nordstrom", "tj maxx", "cosmopolitan", "markdown",
			"furniture", "bedroom", "patio", "shopping hack", "fashion",
			"beauty", "skincare", "coupon", "promo code", "simplycodes",
			"trustpilot", "amc theatre", "block and reserve", "fauxmoi",
			"cnn underscored", "whowhatwear",
		},
		BlockedCommunities: []string{
			"pcmasterrace", "watercooling", "Eve", "indianbikes", "thesidehustle",
			"SideHustleGold", "OnlineIncomeHustle", "AIDevelopmentSolution",
			"AIAppInnovation", "TwoXIndia", "AskIndianWomen", "riftboundtcg",
			"confession", "ChennaiBuyAndSell", "concerts_india", "SocialParis",
		},
		GenericCommunities: []string{
			"tickets", "concerts", "livemusic", "comedy", "Concerts",
			"EventTickets", "StubHub", "mma", "boxing", "esports",
			"BostonSocialClub", "boston", "washdc", "orangecounty",
			"burlington", "CUA", "Broadway",
		},
		ArtistCommunities: []string{
			"TameImpala", "JesseWelles", "D4DJ",
		},
		TeamCommunities: []string{
			"NPBtickets", "WorldCup2026Tickets", "wnba", "nwsl",
			"NCAAW", "CollegeWrestling", "collegehockey", "collegebaseball",
			"OKState", "PennStateUniversity",
		},
		KnownVenues: []string{
			"House of Blues", "Red Rocks", "The Fillmore",
			"Madison Square Garden", "MSG", "Ryman", "Greek Theatre",
			"Hollywood Bowl", "Radio City", "Carnegie Hall",
			"Lincoln Center", "Beacon Theatre", "Apollo Theater",
			"Bowery Ballroom", "9:30 Club", "The Anthem",
			"Gorge Amphitheatre",
		},
		Categories: []Category{
			{Name: "comedy", Keywords: []string{
				"comedy show", "stand-up", "standup", "comedian",
				"comedy tour", "comedy special", "open mic",
			}},
			{Name: "concerts", Keywords: []string{
				"concert", "tour", "live show", "music festival", "gig",
				"album tour", "world tour", "arena show",
			}},
			{Name: "sports", Keywords: []string{
				"game tickets", "match tickets", "bout", "fight night",
				"championship", "finals tickets", "playoff", "derby",
				"rivalry game", "bowl game", "tournament",
				"lacrosse", "rugby", "cricket", "handball", "water polo",
				"field hockey", "curling", "fencing", "wrestling",
				"roller derby", "bull riding", "rodeo", "motocross",
				"pickleball", "disc golf", "esports", "wnba", "nwsl",
				"indycar", "horse racing",
			}},
			{Name: "electronic", Keywords: []string{
				"edm", "rave", "dj set", "dubstep", "techno",
				"drum and bass", "warehouse party", "electronic music",
			}},
		},
		TypeComedian: []string{"comedian", "comedy", "stand-up", "stand up", "standup", "open mic"},
		TypeArtist:   []string{"concert", "tour", "album", "band", "singer", "music", "festival", "gig"},
		TypeTeam:     []string{"game", "match", "playoff", "championship", "derby", "rivalry", "team", "league", " vs ", " vs."},
		TypeShow:     []string{"broadway", "theater", "theatre", "musical", "play", "show"},
		NameDenylist: []string{
			"anyone", "someone", "everyone", "tickets", "ticket", "resale",
			"stubhub", "seatgeek", "presale", "waitlist", "general admission",
		},
		BannedOpeners: []string{
			"i", "my", "the", "its", "this", "that", "and", "but",
			"so", "for", "in", "on", "at", "it", "a",
		},
		FunctionWords: []string{
			"was", "were", "have", "has", "had", "will", "would",
			"could", "should", "anyone", "someone", "trying", "getting",
		},
		SearchQueries: []string{
			"sold out tickets",
			"can't get tickets",
			"sold out instantly",
			"need tickets",
			"sellout event",
			"college wrestling sold out",
			"college hockey sold out tickets",
			"college gymnastics sold out",
			"NCAAW tickets sold out",
			"women's basketball sold out",
			"college baseball tickets sold out",
			"college lacrosse tickets",
			"college volleyball sold out",
			"swimming championship tickets",
			"track and field championship tickets",
		},
		SweepCommunities: []string{
			"tickets", "concerts", "livemusic", "comedy", "StandUpComedy",
			"boxing", "mma", "wrestling", "soccer", "baseball", "basketball",
			"hockey", "lacrosse", "rugby", "esports", "nfl",
			"cfb", "wnba", "nwsl", "minorleaguebaseball", "indycar", "nascar",
			"rodeo", "rollerderby", "pickleball", "discgolf",
			"StubHub", "EventTickets",
			"NCAAW", "collegehockey", "collegebaseball",
			"gymnastics", "Rowing", "trackandfield", "swimming",
			"volleyball", "fencing", "waterpolo",
			"CollegeWrestling", "collegesoftball",
			"OKState", "PennStateUniversity", "LSUTigers", "OU",
			"Huskers", "IowaHawkeyes", "OhioStateFootball",
		},
		FanCommunities: []string{
			"aves", "EDM", "dubstep", "DnB", "techno", "house",
			"trap", "bassnectar", "Wakaan", "deadmau5",
			"jambands", "phish", "gratefuldead", "GooseTheBand", "indieheads",
			"indie_rock", "LetsTalkMusic", "listentothis",
			"StandUpComedy", "comedy", "Killtony",
			"CountryMusic", "AltCountry", "RedDirtMusic",
			"punk", "hardcore", "poppunkers", "Metalcore", "PostHardcore",
			"LatinMusic", "reggaeton",
			"hiphopheads", "undergroundhiphop",
		},
		TargetCities: []string{
			"New York", "Los Angeles", "Chicago", "Nashville", "Austin",
			"Denver", "Atlanta", "Philadelphia", "Portland", "Seattle",
			"San Francisco", "Miami", "Dallas", "Houston", "Minneapolis",
			"Detroit", "New Orleans", "Brooklyn", "Washington DC", "Boston",
		},
	}
}
