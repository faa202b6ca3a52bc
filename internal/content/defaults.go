package content

import "github.com/madhatterpub/site/internal/domain"

// MapEmbedURL is the fixed Google Maps embed for the pub. It is keyed by the
// real street address and does not follow a location override.
const MapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2796.3105053001584!2d-73.5793!3d45.4973!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x4cc91a41eabd3ad7%3A0x1bd1eca9c4a5cc4e!2s1240%20Crescent%20St%2C%20Montreal%2C%20QC%20H3G%202A9!5e0!3m2!1sen!2sca!4v1651234567890!5m2!1sen!2sca"

// LogoURL is the round logo shown in the header and footer.
const LogoURL = "https://images.unsplash.com/photo-1490132328392-e6ef54a90dda?w=100&q=80"

func img(src string) *string { return &src }

// Default returns a fresh copy of the built-in site content.
func Default() Content {
	return Content{
		Hero:       defaultHero(),
		Menu:       Menu{Food: defaultFood(), Drinks: defaultDrinks()},
		Atmosphere: defaultAtmosphere(),
		Staff:      defaultStaff(),
		Team:       defaultTeam(),
		PubTeam:    defaultPubTeam(),
		Location:   defaultLocation(),
	}
}

func defaultHero() domain.Hero {
	return domain.Hero{
		Images: []string{
			"https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=1200&q=80",
			"https://images.unsplash.com/photo-1572116469696-31de0f17cc34?w=1200&q=80",
			"https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=1200&q=80",
			"https://images.unsplash.com/photo-1510523741862-5971084c9770?w=1200&q=80",
		},
		Title:   "Mad Hatter Pub",
		Tagline: "Montreal's Ultimate Nightlife Destination",
		CTAText: "Explore Our Pub",
		CTAHref: "#menu",
	}
}

func defaultFood() []domain.MenuCategory {
	return []domain.MenuCategory{
		{
			ID:   "appetizers",
			Name: "Appetizers",
			Items: []domain.MenuItem{
				{
					ID:          "nachos",
					Name:        "Loaded Nachos",
					Description: "Crispy tortilla chips topped with melted cheese, jalapeños, guacamole, sour cream, and pico de gallo.",
					Price:       "$14.99",
					Image:       img("https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?w=800&q=80"),
					Tags:        []string{"Shareable", "Vegetarian"},
				},
				{
					ID:          "wings",
					Name:        "Mad Hatter Wings",
					Description: "Crispy chicken wings tossed in your choice of sauce: Buffalo, BBQ, Honey Garlic, or Lemon Pepper.",
					Price:       "$16.99",
					Image:       img("https://images.unsplash.com/photo-1608039755401-742074f0548d?w=800&q=80"),
				},
				{
					ID:          "calamari",
					Name:        "Crispy Calamari",
					Description: "Lightly battered calamari served with garlic aioli and marinara sauce.",
					Price:       "$15.99",
					Image:       img("https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=800&q=80"),
				},
				{
					ID:          "poutine",
					Name:        "Classic Poutine",
					Description: "Golden fries topped with cheese curds and rich gravy.",
					Price:       "$12.99",
					Image:       img("https://images.unsplash.com/photo-1586805608485-add336722759?w=800&q=80"),
					Tags:        []string{"Montreal Classic"},
				},
			},
		},
		{
			ID:   "mains",
			Name: "Main Courses",
			Items: []domain.MenuItem{
				{
					ID:          "burger",
					Name:        "Mad Hatter Burger",
					Description: "8oz Angus beef patty with cheddar, bacon, lettuce, tomato, pickles, and our special sauce on a brioche bun. Served with fries.",
					Price:       "$18.99",
					Image:       img("https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800&q=80"),
				},
				{
					ID:          "fish",
					Name:        "Fish & Chips",
					Description: "Beer-battered cod with tartar sauce, coleslaw, and crispy fries.",
					Price:       "$19.99",
					Image:       img("https://images.unsplash.com/photo-1579208030886-b937da0925dc?w=800&q=80"),
				},
				{
					ID:          "mac",
					Name:        "Truffle Mac & Cheese",
					Description: "Creamy macaroni with a blend of cheeses, topped with truffle oil and crispy breadcrumbs.",
					Price:       "$16.99",
					Image:       img("https://images.unsplash.com/photo-1543339494-b4cd4f7ba686?w=800&q=80"),
					Tags:        []string{"Vegetarian"},
				},
				{
					ID:          "steak",
					Name:        "Steak Frites",
					Description: "10oz striploin steak cooked to your preference, served with garlic butter and crispy fries.",
					Price:       "$26.99",
					Image:       img("https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800&q=80"),
				},
			},
		},
		{
			ID:   "desserts",
			Name: "Desserts",
			Items: []domain.MenuItem{
				{
					ID:          "cheesecake",
					Name:        "New York Cheesecake",
					Description: "Creamy cheesecake with a graham cracker crust, topped with berry compote.",
					Price:       "$9.99",
					Image:       img("https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=800&q=80"),
				},
				{
					ID:          "brownie",
					Name:        "Chocolate Brownie Sundae",
					Description: "Warm chocolate brownie topped with vanilla ice cream, chocolate sauce, and whipped cream.",
					Price:       "$10.99",
					Image:       img("https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=800&q=80"),
				},
			},
		},
	}
}

func defaultDrinks() []domain.MenuCategory {
	return []domain.MenuCategory{
		{
			ID:   "cocktails",
			Name: "Signature Cocktails",
			Items: []domain.MenuItem{
				{ID: "wonderland", Name: "Wonderland Martini", Description: "Vodka, blue curaçao, lemon juice, and a splash of magic.", Price: "$14", Image: img("https://images.unsplash.com/photo-1527761939622-933c40039f5a?w=800&q=80")},
				{ID: "cheshire", Name: "Cheshire Cat", Description: "Gin, elderflower liqueur, cucumber, mint, and lime juice.", Price: "$15", Image: img("https://images.unsplash.com/photo-1551538827-9c037cb4f32a?w=800&q=80")},
				{ID: "queen", Name: "Queen of Hearts", Description: "Bourbon, amaretto, fresh strawberry puree, and lemon juice.", Price: "$16", Image: img("https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?w=800&q=80")},
				{ID: "rabbit", Name: "White Rabbit", Description: "White rum, coconut cream, pineapple juice, and vanilla.", Price: "$14", Image: img("https://images.unsplash.com/photo-1536935338788-846bb9981813?w=800&q=80")},
				{ID: "teaparty", Name: "Mad Tea Party", Description: "Tequila, triple sec, earl grey tea syrup, and lime juice.", Price: "$15", Image: img("https://images.unsplash.com/photo-1546171753-97d7676e4602?w=800&q=80")},
			},
		},
		{
			ID:   "beers",
			Name: "Beer Selection",
			Items: []domain.MenuItem{
				{ID: "local1", Name: "Dieu du Ciel Péché Mortel", Description: "Imperial coffee stout from Montreal, 9.5% ABV.", Price: "$8", Image: img("https://images.unsplash.com/photo-1566633806327-68e152aaf26d?w=800&q=80")},
				{ID: "local2", Name: "Unibroue La Fin du Monde", Description: "Belgian-style tripel from Quebec, 9% ABV.", Price: "$8", Image: img("https://images.unsplash.com/photo-1567696911980-2c295b5df157?w=800&q=80")},
				{ID: "ipa1", Name: "Mad Hatter IPA", Description: "Our house IPA with citrus and pine notes, 6.5% ABV.", Price: "$7", Image: img("https://images.unsplash.com/photo-1612528443702-f6741f70a049?w=800&q=80")},
				{ID: "lager1", Name: "Pilsner Urquell", Description: "Classic Czech pilsner, 4.4% ABV.", Price: "$7", Image: img("https://images.unsplash.com/photo-1618183479302-1e0aa382c36b?w=800&q=80")},
				{ID: "stout1", Name: "Guinness Draught", Description: "Classic Irish dry stout, 4.2% ABV.", Price: "$7", Image: img("https://images.unsplash.com/photo-1659617031204-0b56e9046b69?w=800&q=80")},
				{ID: "wheat1", Name: "Hoegaarden", Description: "Belgian witbier with notes of coriander and orange peel, 4.9% ABV.", Price: "$7", Image: img("https://images.unsplash.com/photo-1608270586620-248524c67de9?w=800&q=80")},
			},
		},
		{
			ID:   "wines",
			Name: "Wine List",
			Items: []domain.MenuItem{
				{ID: "red1", Name: "Cabernet Sauvignon", Description: "Full-bodied red wine with notes of black currant and cedar.", Price: "$10/glass | $45/bottle"},
				{ID: "white1", Name: "Sauvignon Blanc", Description: "Crisp white wine with citrus and herbal notes.", Price: "$9/glass | $40/bottle"},
				{ID: "sparkling1", Name: "Prosecco", Description: "Light and bubbly Italian sparkling wine.", Price: "$10/glass | $45/bottle"},
			},
		},
		{
			ID:   "nonalcoholic",
			Name: "Non-Alcoholic Options",
			Items: []domain.MenuItem{
				{ID: "mocktail1", Name: "Curious Mocktail", Description: "Pineapple juice, lime, mint, and soda water.", Price: "$7", Image: img("https://images.unsplash.com/photo-1621263764928-df1444c5e859?w=800&q=80")},
				{ID: "soda1", Name: "Craft Sodas", Description: "Selection of premium craft sodas.", Price: "$5"},
				{ID: "coffee1", Name: "Specialty Coffee", Description: "Locally roasted coffee prepared to your liking.", Price: "$4"},
			},
		},
	}
}

func defaultAtmosphere() []domain.GalleryImage {
	return []domain.GalleryImage{
		{ID: 1, Src: "https://images.unsplash.com/photo-1610297166034-55f21cd157a5?w=800&q=80", Alt: "Pool Tables", Category: domain.CategoryGames, Caption: "Challenge your friends to a game of pool in our spacious gaming area."},
		{ID: 2, Src: "https://images.unsplash.com/photo-1611254666354-3fe563131d5b?w=800&q=80", Alt: "Jenga Tower", Category: domain.CategoryGames, Caption: "Test your steady hands with our giant Jenga sets."},
		{ID: 3, Src: "https://images.unsplash.com/photo-1545128485-c400ce7b23d2?w=800&q=80", Alt: "Ping Pong Tables", Category: domain.CategoryGames, Caption: "Show off your ping pong skills on our professional tables."},
		{ID: 4, Src: "https://images.unsplash.com/photo-1566417713940-fe7c737a9ef2?w=800&q=80", Alt: "Vibrant Bar Area", Category: domain.CategoryNightlife, Caption: "Our fully stocked bar serves craft cocktails and an extensive beer selection."},
		{ID: 5, Src: "https://images.unsplash.com/photo-1516997121675-4c2d1684aa3e?w=800&q=80", Alt: "Lively Dance Floor", Category: domain.CategoryNightlife, Caption: "Dance the night away with our resident DJs spinning the latest hits."},
		{ID: 6, Src: "https://images.unsplash.com/photo-1470337458703-46ad1756a187?w=800&q=80", Alt: "Cozy Lounge Area", Category: domain.CategoryNightlife, Caption: "Relax in our comfortable lounge areas between games and dancing."},
	}
}

func defaultStaff() []domain.StaffImage {
	return []domain.StaffImage{
		{ID: 1, Src: "/images/staff/3 amigos.png", Alt: "Three Amigos", Caption: "Our three amigos ready to serve you the best drinks in town."},
		{ID: 2, Src: "/images/staff/3 at hatters.png", Alt: "Three at Hatters", Caption: "Our team bringing the best pub experience to Downtown Montreal."},
		{ID: 3, Src: "/images/staff/3 hatters.png", Alt: "Three Hatters", Caption: "Always ready with a smile and great service."},
		{ID: 4, Src: "/images/staff/3 steves.png", Alt: "Three Steves", Caption: "The Steve trio - masters of mixology and good times."},
		{ID: 5, Src: "/images/staff/ChatGPT Image May 17, 2025, 09_42_36 PM.png", Alt: "Staff Member", Caption: "One of our friendly team members making your visit special."},
		{ID: 6, Src: "/images/staff/ChatGPT Image May 17, 2025, 09_49_55 PM.png", Alt: "Staff Member", Caption: "Bringing energy and enthusiasm to every shift."},
		{ID: 7, Src: "/images/staff/ChatGPT Image May 18, 2025, 01_23_26 AM.png", Alt: "Staff Member", Caption: "We don't just work here - we have fun too!"},
		{ID: 8, Src: "/images/staff/ChatGPT Image May 18, 2025, 02_33_07 AM.png", Alt: "Staff Member", Caption: "Looking stylish while providing excellent service."},
		{ID: 9, Src: "/images/staff/ChatGPT Image May 18, 2025, 02_36_16 AM.png", Alt: "Staff Member", Caption: "Our dynamic team ready to make your night memorable."},
		{ID: 10, Src: "/images/staff/ChatGPT Image May 18, 2025, 02_39_28 AM.png", Alt: "Staff Member", Caption: "Crafting the perfect night out experience."},
		{ID: 11, Src: "/images/staff/ChatGPT Image May 18, 2025, 03_10_47 AM.png", Alt: "Staff Member", Caption: "Part of our amazing team at Mad Hatter Pub."},
		{ID: 12, Src: "/images/staff/colin tatts.png", Alt: "Colin with Tattoos", Caption: "Colin showing off his unique style and tattoos."},
		{ID: 13, Src: "/images/staff/colinshot 2025-05-17 at 11.50.08 PM.png", Alt: "Colin", Caption: "Colin - one of our most experienced team members."},
		{ID: 14, Src: "/images/staff/colinshot 2025-05-17 at 11.50.21 PM.png", Alt: "Colin", Caption: "Colin making sure your experience is perfect."},
		{ID: 15, Src: "/images/staff/hatters outside.webp", Alt: "Hatters Outside", Caption: "Our team enjoying some fresh air outside the pub."},
		{ID: 16, Src: "/images/staff/noa2025-05-17 at 11.49.14 PM.png", Alt: "Noa", Caption: "Noa - bringing smiles to every customer."},
		{ID: 17, Src: "/images/staff/noa2025-05-17 at 11.55.31 PM.png", Alt: "Noa", Caption: "Noa ready to serve you the best drinks in town."},
		{ID: 18, Src: "/images/staff/noa2025-05-17 at 11.55.54 PM.png", Alt: "Noa", Caption: "Noa - one of our star team members."},
		{ID: 19, Src: "/images/staff/noa2025-05-18 at 12.39.02 AM.png", Alt: "Noa", Caption: "Noa bringing energy and enthusiasm to every shift."},
		{ID: 20, Src: "/images/staff/Screenshot 2025-05-17 at 9.24.15 PM.png", Alt: "Staff Member", Caption: "Part of our amazing team at Mad Hatter Pub."},
		{ID: 21, Src: "/images/staff/Screenshot 2025-05-17 at 9.24.59 PM.png", Alt: "Staff Member", Caption: "Always ready with a smile and great service."},
		{ID: 22, Src: "/images/staff/Screenshot 2025-05-17 at 9.25.13 PM.png", Alt: "Staff Member", Caption: "Making your visit to Mad Hatter Pub special."},
		{ID: 23, Src: "/images/staff/Screenshot 2025-05-17 at 11.56.13 PM.png", Alt: "Staff Member", Caption: "Part of the Mad Hatter family."},
		{ID: 24, Src: "/images/staff/steveshot 2025-05-17 at 9.22.12 PM.png", Alt: "Steve", Caption: "Steve - master of mixology and good times."},
	}
}

func defaultTeam() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, ImageURL: "/images/staff/colinshot 2025-05-17 at 11.50.08 PM.png", Name: "Colin", Caption: "Our skilled bartender crafting signature cocktails with flair."},
		{ID: 2, ImageURL: "/images/staff/colinshot 2025-05-17 at 11.50.21 PM.png", Name: "Colin", Caption: "Downtown Montreal's favorite server, always with a smile."},
		{ID: 3, ImageURL: "/images/staff/colin tatts.png", Name: "Colin", Caption: "Making sure your experience is nothing short of amazing."},
		{ID: 4, ImageURL: "/images/staff/noa2025-05-17 at 11.49.14 PM.png", Name: "Noa", Caption: "Sporting our signature 'Original One' beanie while serving up good times."},
		{ID: 5, ImageURL: "/images/staff/noa2025-05-17 at 11.55.31 PM.png", Name: "Noa", Caption: "Our friendly team member making sure your experience is perfect."},
		{ID: 6, ImageURL: "/images/staff/noa2025-05-18 at 12.39.02 AM.png", Name: "Noa", Caption: "Bringing energy and enthusiasm to every shift."},
	}
}

func defaultPubTeam() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: 1, ImageURL: "/images/staff/3 amigos.png", Name: "The Mixologist", Caption: "Crafting signature cocktails with flair and precision."},
		{ID: 2, ImageURL: "/images/staff/3 at hatters.png", Name: "Montreal Team Lead", Caption: "Bringing the best pub experience to Downtown Montreal."},
		{ID: 3, ImageURL: "/images/staff/3 hatters.png", Name: "Service Specialist", Caption: "Always ready with a smile and exceptional service."},
		{ID: 4, ImageURL: "/images/staff/3 steves.png", Name: "The Original One", Caption: "Sporting our signature beanie while serving up good times."},
		{ID: 5, ImageURL: "/images/staff/ChatGPT Image May 17, 2025, 09_42_36 PM.png", Name: "Beard Master", Caption: "Our friendly bearded team member ensuring your experience is perfect."},
		{ID: 6, ImageURL: "/images/staff/ChatGPT Image May 17, 2025, 09_49_55 PM.png", Name: "Curly", Caption: "Bringing energy and enthusiasm to every shift."},
		{ID: 7, ImageURL: "/images/staff/ChatGPT Image May 18, 2025, 01_23_26 AM.png", Name: "The Energizer", Caption: "We don't just work here - we have fun too!"},
		{ID: 8, ImageURL: "/images/staff/ChatGPT Image May 18, 2025, 02_33_07 AM.png", Name: "Cap", Caption: "Looking stylish while providing excellent service."},
		{ID: 9, ImageURL: "/images/staff/ChatGPT Image May 18, 2025, 02_36_16 AM.png", Name: "Dynamic Duo", Caption: "Our team ready to make your night memorable."},
		{ID: 10, ImageURL: "/images/staff/ChatGPT Image May 18, 2025, 02_39_28 AM.png", Name: "The Entertainer", Caption: "Bringing the fun to every Mad Hatter night."},
		{ID: 11, ImageURL: "/images/staff/ChatGPT Image May 18, 2025, 03_10_47 AM.png", Name: "Bar Team", Caption: "The perfect team behind our bar, ready to serve you."},
		{ID: 12, ImageURL: "/images/staff/colin tatts.png", Name: "Style Icon", Caption: "Setting trends while serving drinks."},
	}
}

func defaultLocation() domain.Location {
	return domain.Location{
		Address: "1240 Crescent St, Montreal, QC H3G 2A9",
		Phone:   "(514) 393-1240",
		Email:   "info@madhattermtl.ca",
		Landmarks: []domain.Landmark{
			{Name: "Bell Center", Distance: "0.5 km", Description: "Home of the Montreal Canadiens and major events venue"},
			{Name: "McGill University", Distance: "0.7 km", Description: "Prestigious university in downtown Montreal"},
			{Name: "Concordia University", Distance: "0.3 km", Description: "Urban university with vibrant campus life"},
		},
	}
}
