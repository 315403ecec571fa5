package content

var (
	shortBio = `I'm a passionate developer who loves creating elegant solutions to complex problems. With expertise in modern web technologies, I build applications that are both beautiful and functional.`

	fullBio = `I'm a junior full-stack developer with over 1 years of experience building web applications that solve real-world problems. My journey in tech started with curiosity about how websites work, and that curiosity has evolved into a deep passion for crafting exceptional digital experiences.

I specialize in **React**, **Next.js**, and **Node.js**, but I'm always eager to learn new technologies and frameworks. I believe in writing clean, maintainable code and creating interfaces that are both intuitive and accessible.

When I'm not coding, you can find me contributing to open-source projects, writing technical blog posts, or exploring the latest trends in web development.`

	landscapeDescription = `Collaborating with a five-member team to build a full-stack web application for a Calgary landscaping business using React, Next.js, Node.js, and Firebase, deployed on Vercel.

Developed key features including a secure authentication system with email verification, a dynamic project estimation calculator that generates and emails PDF contracts, and a responsive homepage showcasing the client's services.

Contributed to comprehensive technical documentation (ERDs, use case diagrams, deployment architecture) while working in an Agile environment with GitHub, Figma, and direct client communication.`
)

// Default returns the built-in portfolio dataset. Each call builds a fresh
// value so callers can never alias each other's slices.
func Default() Portfolio {
	return Portfolio{
		Personal: PersonalInfo{
			Name:      "Sagar Kumbhar",
			FirstName: "Sagar",
			LastName:  "Kumbhar",
			Title:     "Junior Full Stack Developer",
			Tagline:   "Building digital experiences that matter",
			Email:     "sagarkumbhar326@gmail.com",
			Phone:     "+1 (368) 399-3478",
			Location:  "Calgary, Alberta Canada",
			ShortBio:  shortBio,
			FullBio:   fullBio,
			Social: map[string]string{
				"github":   "https://github.com/Sagar0003kum",
				"linkedin": "https://www.linkedin.com/in/sagar-kumbhar-90774b192/",
			},
			ResumeURL:    "/static/Sagar.pdf",
			ProfileImage: "/images/sagar.jpg",
			Availability: Availability{
				IsAvailable: true,
				Status:      "Open to opportunities",
			},
		},
		Skills: Skills{
			Technical: []SkillCategory{
				{
					Category: "Frontend",
					Items: []Skill{
						{Name: "React", Level: 70},
						{Name: "Next.js", Level: 70},
						{Name: "JavaScript", Level: 60},
						{Name: "HTML/CSS", Level: 65},
						{Name: "Tailwind CSS", Level: 75},
					},
				},
				{
					Category: "Backend",
					Items: []Skill{
						{Name: "Node.js", Level: 75},
						{Name: "Python", Level: 70},
						{Name: "PostgreSQL", Level: 25},
						{Name: "MongoDB", Level: 50},
						{Name: "REST APIs", Level: 20},
					},
				},
				{
					Category: "Tools & Platforms",
					Items: []Skill{
						{Name: "Git", Level: 75},
						{Name: "Docker", Level: 20},
						{Name: "AWS", Level: 25},
						{Name: "Vercel", Level: 80},
						{Name: "Figma", Level: 80},
					},
				},
			},
			Soft: []string{
				"Problem Solving",
				"Team Collaboration",
				"Communication",
				"Project Management",
				"Mentoring",
			},
			Languages: []SpokenLanguage{
				{Name: "English", Proficiency: "Native"},
				{Name: "Spanish", Proficiency: "Conversational"},
			},
		},
		Experience: []WorkExperience{
			{
				ID:          "exp-1",
				Company:     "Innoventix Solutions",
				Role:        "Junior Full Stack Developer",
				Type:        "Contract Full-time",
				StartDate:   "Jan 2022",
				EndDate:     "Feb 2023",
				Location:    "Ahmedabad, Gujarat, India",
				Description: "Contributed to web application development using React and Node.js while supporting internal tools and dashboards.",
				Responsibilities: []string{
					"Built and maintained 5+ responsive web pages using React and basic CSS, ensuring cross-browser compatibility",
					"Developed 10+ RESTful API endpoints using Node.js and Express for internal data management tools",
					"Created 15+ interactive dashboards integrating frontend components with backend data using JavaScript and SQL",
					"Collaborated with 3 cross-functional teams to gather requirements and implement user-facing features",
					"Wrote and optimized 20+ SQL queries for data retrieval and integration with web applications",
					"Participated in code reviews and debugging sessions, resolving 50+ issues to improve application stability",
				},
				Technologies: []string{"React", "Node.js", "Express", "SQL", "JavaScript", "HTML/CSS", "Git", "Python"},
				Achievements: []string{
					"Reduced manual reporting tasks by automating workflows, saving 8 hours weekly",
					"Improved application data accuracy by implementing validation processes",
				},
			},
			{
				ID:          "exp-2",
				Company:     "Innoventix Solutions",
				Role:        "Full Stack Developer Intern",
				Type:        "Internship",
				StartDate:   "Mar 2021",
				EndDate:     "Dec 2021",
				Location:    "Ahmedabad, Gujarat, India",
				Description: "Learned full stack development fundamentals while assisting senior developers with web application projects.",
				Responsibilities: []string{
					"Assisted in building 5+ basic web pages using HTML, CSS, and JavaScript under mentorship",
					"Learned and applied SQL fundamentals by writing 15+ queries for backend data integration",
					"Supported frontend development by creating reusable UI components and simple forms",
					"Helped organize and validate 3,000+ records for database integration into web applications",
					"Collaborated on 2 cross-functional projects, gaining experience in agile workflows and team communication",
				},
				Technologies: []string{"HTML", "CSS", "JavaScript", "SQL", "Git", "Excel"},
				Achievements: []string{
					"Successfully completed internship with hands-on exposure to full stack workflows",
					"Gained foundational skills in frontend-backend integration",
				},
			},
		},
		Volunteer: []VolunteerExperience{
			{
				ID:           "vol-1",
				Organization: "ISKCON",
				Role:         "Event Coordination Volunteer",
				StartDate:    "Feb 2024",
				EndDate:      "Present",
				IsCurrent:    true,
				Description:  "Building technology solutions for local non-profits.",
				Responsibilities: []string{
					"Coordinated food distribution for 500+ attendees, building process optimization skills transferable to designing efficient software systems.",
					"Collaborated with 20+ volunteers during high-pressure festivals, strengthening communication and the ability to deliver under tight deadlines.",
					"Managed logistics and resource allocation on the fly, developing analytical thinking essential for debugging and data-driven decisions.",
					"Trained new volunteers by breaking down complex processes into clear steps.",
				},
				Impact: "Helped 50+ organizations improve their digital presence",
			},
		},
		Education: []Education{
			{
				ID:          "edu-1",
				Institution: "SOUTHERN ALBERTA INSTITUTE OF TECHNOLOGY",
				Degree:      "Software Development",
				Field:       "Web and Digital Technology",
				StartDate:   "Sep 2024",
				EndDate:     "Aug 2026",
				Location:    "Calgary, AB Canada",
				RelevantCourses: []string{
					"Data Structures & Algorithms",
					"Web Development",
					"Database Systems",
					"Software Engineering",
				},
			},
			{
				ID:          "edu-2",
				Institution: "Gujarat Technological University",
				Degree:      "Bachelor of Applied Science",
				Field:       "Information Technology",
				StartDate:   "Aug 2016",
				EndDate:     "April 2019",
				Location:    "Anand Gujarat, India",
				Grade:       "7.5/9.0",
				RelevantCourses: []string{
					"Android Development",
					"Web Development",
					"Python Programming",
					"PHP & MySQL",
				},
				Activities: []string{
					"President of Computer Science Club",
					"Hackathon Organizer",
				},
			},
		},
		Certifications: []Certification{
			{Name: "Google Data Analytics Professional Certificate", Issuer: "Coursera", Date: "On going"},
			{Name: "Github essential training", Issuer: "LinkedIn Learning", Date: "Feb 2025"},
		},
		Projects: []Project{
			{
				ID:               "proj-1",
				Slug:             "landscape-web-application",
				Title:            "Landscape Web Application",
				Category:         "School and Client",
				Type:             "Web Application",
				Status:           StatusOngoing,
				Featured:         true,
				ShortDescription: "Built a full-stack landscaping web app with React, Next.js, and Firebase, featuring secure authentication, a PDF-generating cost estimator, and responsive design in an Agile team environment.",
				FullDescription:  landscapeDescription,
				KeyFeatures: []string{
					"User authentication with Firebase and OAuth",
					"Project Estimation Calculator",
					"Automated PDF Generation",
					"Admin dashboard for order management",
					"Responsive design for all devices",
				},
				TechStack: []string{"React", "Node.js", "MySQL", "Stripe", "Firebase", "Tailwind CSS"},
				Role:      "Developer",
				TeamSize:  5,
				StartDate: "Sep 2025",
				EndDate:   "April 2026",
				Year:      2026,
				Duration:  "8 months",
				Links: ProjectLinks{
					GitHub: "https://github.com/Sagar0003kum/Landscap_Website.git",
					Live:   "https://landscap-website.vercel.app/",
				},
				Images: ProjectImages{Thumbnail: "/images/projects/Landscape.jpg"},
			},
		},
		Navigation: Navigation{
			Main: []NavigationEntry{
				{Name: "Home", Href: "/"},
				{Name: "About", Href: "/about"},
				{Name: "Experience", Href: "/experience"},
				{Name: "Education", Href: "/education"},
				{Name: "Projects", Href: "/projects"},
				{Name: "Contact", Href: "/contact"},
			},
			Footer: []NavigationEntry{
				{Name: "Home", Href: "/"},
				{Name: "About", Href: "/about"},
				{Name: "Projects", Href: "/projects"},
				{Name: "Contact", Href: "/contact"},
			},
		},
		Site: SiteConfig{
			Title:       "Sagar Kumbhar | Junior Full Stack Developer",
			Description: "Full Stack Developer specializing in React, Next.js, and Node.js.",
			URL:         "https://yoursite.com",
			OGImage:     "/images/sagar.jpg",
			Keywords:    []string{"Full Stack Developer", "React Developer", "Next.js", "Web Development"},
			Author:      "Sagar Kumbhar",
		},
	}
}
