package store

import "portfolio/internal/model"

const defaultSummary = "Highly motivated and results-oriented Full Stack Developer with a strong passion for creating innovative and user-centric web applications. Proficient in both frontend and backend technologies, with a keen eye for creative UI/UX design and a commitment to delivering high-quality, scalable solutions. Adept at working under pressure and leveraging AI tools to enhance productivity and stay abreast of market trends."

func defaultProjects() []model.Project {
	return []model.Project{
		{
			Title:           "Roo Florals",
			Subtitle:        "Online Flower Shop",
			Description:     "A comprehensive e-commerce platform for a flower shop featuring product catalog, shopping cart, order management, and admin panel.",
			LongDescription: "Developed a beautiful and modern online flower shop with complete e-commerce functionality. The platform includes a responsive product catalog, shopping cart with quantity management, secure checkout process, and comprehensive admin panel for managing products, orders, and settings. Features include coupon system, branch management, contact forms, and Telegram integration for order notifications.",
			Technologies:    []string{"Flask", "Python", "SQLite", "HTML5", "CSS3", "JavaScript", "Telegram Bot API"},
			Features: []string{
				"Product catalog with search and filtering",
				"Shopping cart and checkout system",
				"Admin panel for content management",
				"Order tracking and management",
				"Telegram bot integration",
				"Coupon and discount system",
				"Branch management",
				"Responsive design",
			},
			LiveURL:    "https://rooflorals.com",
			GithubURL:  "#",
			Status:     "Live",
			IsFeatured: true,
			OrderIndex: 1,
		},
		{
			Title:           "MG Store",
			Subtitle:        "E-commerce Platform",
			Description:     "A robust e-commerce platform with modern React frontend, Flask backend, and comprehensive admin panel.",
			LongDescription: "Engineered a full-stack e-commerce solution with a modern React.js frontend and robust Flask backend. The platform features comprehensive API endpoints for products, categories, orders, authentication, and payment processing. Implemented advanced security measures including CSRF protection, rate limiting, and secure logging. The admin panel provides rich UI for managing all aspects of the store.",
			Technologies:    []string{"React.js", "Flask", "SQLAlchemy", "Python", "REST API", "CSRF Protection", "Rate Limiting"},
			Features: []string{
				"Modern React.js frontend",
				"RESTful API architecture",
				"Advanced security measures",
				"Rate limiting and CSRF protection",
				"Comprehensive admin panel",
				"Payment processing integration",
				"User authentication system",
				"Scalable database design",
			},
			LiveURL:    "#",
			GithubURL:  "#",
			Status:     "In Development",
			IsFeatured: true,
			OrderIndex: 2,
		},
		{
			Title:           "Nexus Agency",
			Subtitle:        "Agency Website",
			Description:     "A modern agency website showcasing services, portfolio, and team.",
			LongDescription: "Created a sophisticated agency website that effectively showcases the company's services, portfolio, and team. The site features modern design principles, smooth animations, and optimized performance. Implemented SEO best practices and ensured excellent user experience across all devices.",
			Technologies:    []string{"React.js", "Tailwind CSS", "Framer Motion", "Next.js", "SEO Optimization"},
			Features: []string{
				"Modern responsive design",
				"Smooth animations and transitions",
				"SEO optimized",
				"Performance optimized",
				"Portfolio showcase",
				"Contact forms",
				"Team profiles",
				"Service pages",
			},
			LiveURL:    "https://nexusagencyeg.com",
			GithubURL:  "#",
			Status:     "Live",
			IsFeatured: true,
			OrderIndex: 3,
		},
	}
}

func defaultSkills() []model.Skill {
	return []model.Skill{
		{Name: "Python", Category: "Backend", Level: 90},
		{Name: "Flask", Category: "Backend", Level: 85},
		{Name: "JavaScript", Category: "Frontend", Level: 88},
		{Name: "React.js", Category: "Frontend", Level: 85},
		{Name: "HTML5", Category: "Frontend", Level: 95},
		{Name: "CSS3", Category: "Frontend", Level: 90},
		{Name: "SQLite", Category: "Database", Level: 80},
		{Name: "SQLAlchemy", Category: "Database", Level: 75},
		{Name: "REST APIs", Category: "Backend", Level: 85},
		{Name: "Git", Category: "Tools", Level: 80},
		{Name: "UI/UX Design", Category: "Design", Level: 85},
	}
}

func defaultExperience() []model.Experience {
	return []model.Experience{
		{
			Title:    "Full Stack Developer",
			Company:  "Freelance / Self-Employed",
			Period:   "2022 - Present",
			Location: "Remote",
			Responsibilities: []string{
				"Developed comprehensive e-commerce platforms using Flask (Python) and React.js",
				"Implemented secure admin panels with user authentication and CSRF protection",
				"Integrated third-party APIs including Telegram Bot API for real-time notifications",
				"Designed and implemented responsive UI/UX with modern design principles",
				"Managed SQLite and SQLAlchemy databases for efficient data storage and retrieval",
				"Applied security best practices including rate limiting and secure headers",
			},
			Projects: []string{
				"Roo Florals - Online flower shop with complete e-commerce functionality",
				"MG Store - Advanced e-commerce platform with React frontend and Flask backend",
				"Nexus Agency - Modern agency website with optimized performance",
			},
			OrderIndex: 1,
		},
	}
}

func defaultEducation() []model.Education {
	return []model.Education{
		{
			Degree:      "Bachelor's Degree",
			Field:       "Computer Science / Software Engineering",
			Institution: "[To be filled]",
			Period:      "[To be filled]",
			Description: "Focused on software development, algorithms, and computer systems.",
			OrderIndex:  1,
		},
	}
}

func defaultLanguages() []model.Language {
	return []model.Language{
		{Name: "Arabic", Level: "Native", OrderIndex: 1},
		{Name: "English", Level: "Fluent", OrderIndex: 2},
	}
}
