package persistence

import (
	"fmt"

	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/auth"
)

const (
	seedAdminUsername = "admin"
	seedAdminPassword = "password"
)

// SeedDocument builds the demo content a fresh store starts with. The admin
// password is hashed here so plaintext never reaches disk.
func SeedDocument() (*portfolio.Document, error) {
	hash, err := auth.HashPassword(seedAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("cannot hash seed password: %w", err)
	}

	return &portfolio.Document{
		Profile: portfolio.Profile{
			Name:  "John Doe",
			Title: "Full Stack Developer & UX Designer",
			Bio:   "I build exceptional digital experiences that combine cutting-edge technology with intuitive design. With over 5 years of experience, I specialize in creating responsive web applications that solve real-world problems.",
			Photo: "/placeholder.svg?height=320&width=320",
			SocialLinks: portfolio.SocialLinks{
				GitHub:   "https://github.com/yourusername",
				LinkedIn: "https://linkedin.com/in/yourusername",
				Twitter:  "https://twitter.com/yourusername",
				Email:    "your.email@example.com",
				Website:  "https://yourwebsite.com",
			},
		},
		Experiences: []portfolio.Experience{
			{
				ID:          1,
				Title:       "Senior Frontend Developer",
				Company:     "Tech Innovations Inc.",
				Period:      "2021 - Present",
				Description: "Led the development of the company's flagship product, improving performance by 40%. Mentored junior developers and implemented modern frontend practices.",
				Skills:      []string{"React", "TypeScript", "Next.js", "TailwindCSS"},
			},
			{
				ID:          2,
				Title:       "Full Stack Developer",
				Company:     "Digital Solutions Ltd.",
				Period:      "2018 - 2021",
				Description: "Developed and maintained multiple client projects. Implemented CI/CD pipelines and improved code quality through automated testing.",
				Skills:      []string{"Node.js", "Express", "MongoDB", "React"},
			},
			{
				ID:          3,
				Title:       "Junior Web Developer",
				Company:     "WebCraft Agency",
				Period:      "2016 - 2018",
				Description: "Created responsive websites for clients across various industries. Collaborated with designers to implement pixel-perfect UIs.",
				Skills:      []string{"HTML", "CSS", "JavaScript", "WordPress"},
			},
		},
		Projects: []portfolio.Project{
			{
				ID:               1,
				Title:            "E-commerce Platform",
				ShortDescription: "A full-featured online store with payment processing, inventory management, and analytics dashboard.",
				FullDescription:  "This comprehensive e-commerce solution provides businesses with everything they need to sell products online. Features include secure payment processing with Stripe, real-time inventory management, customer accounts, order tracking, and an advanced analytics dashboard for business insights.",
				Image:            "/placeholder.svg?height=300&width=600",
				Tags:             []string{"Next.js", "Stripe", "MongoDB", "Redux", "TailwindCSS"},
				LiveURL:          "https://example.com/ecommerce",
				GitHubURL:        "https://github.com/yourusername/ecommerce",
				Featured:         true,
			},
			{
				ID:               2,
				Title:            "Health Tracking App",
				ShortDescription: "Mobile-first application for tracking fitness goals, nutrition, and health metrics with data visualization.",
				FullDescription:  "This health tracking application helps users monitor their fitness journey with comprehensive tracking tools. Users can log workouts, track nutrition intake, monitor vital health metrics, and visualize their progress over time with interactive charts.",
				Image:            "/placeholder.svg?height=300&width=600",
				Tags:             []string{"React Native", "Firebase", "D3.js", "Redux", "Expo"},
				LiveURL:          "https://example.com/healthapp",
				GitHubURL:        "https://github.com/yourusername/health-tracker",
				Featured:         true,
			},
			{
				ID:               3,
				Title:            "AI Content Generator",
				ShortDescription: "Web application that leverages AI to generate marketing content, blog posts, and social media captions.",
				FullDescription:  "This AI-powered content generation tool helps marketers and content creators produce high-quality written content quickly. Features include content customization options, tone adjustment, multiple export formats, and a user-friendly interface for non-technical users.",
				Image:            "/placeholder.svg?height=300&width=600",
				Tags:             []string{"Python", "OpenAI API", "React", "Flask", "PostgreSQL"},
				LiveURL:          "https://example.com/ai-content",
				GitHubURL:        "https://github.com/yourusername/ai-content-generator",
				Featured:         true,
			},
		},
		Education: []portfolio.Education{
			{
				ID:          1,
				Degree:      "Master of Computer Science",
				Institution: "Tech University",
				Year:        "2014 - 2016",
				Description: "Specialized in Human-Computer Interaction and Software Engineering",
			},
			{
				ID:          2,
				Degree:      "Bachelor of Science in Information Technology",
				Institution: "State University",
				Year:        "2010 - 2014",
				Description: "Graduated with honors, GPA 3.8/4.0",
			},
		},
		Certifications: []portfolio.Certification{
			{
				ID:          1,
				Name:        "AWS Certified Solutions Architect",
				Issuer:      "Amazon Web Services",
				Year:        "2022",
				Description: "Professional level certification for designing distributed systems on AWS",
			},
			{
				ID:          2,
				Name:        "Google Professional Cloud Developer",
				Issuer:      "Google Cloud",
				Year:        "2021",
				Description: "Advanced certification for building scalable applications on GCP",
			},
			{
				ID:          3,
				Name:        "Certified Scrum Master",
				Issuer:      "Scrum Alliance",
				Year:        "2020",
				Description: "Certification in Agile project management methodologies",
			},
		},
		SkillGroups: []portfolio.SkillGroup{
			{ID: 1, Category: "Frontend", Items: []string{"React", "Next.js", "TypeScript", "TailwindCSS", "Redux", "HTML/CSS", "JavaScript"}},
			{ID: 2, Category: "Backend", Items: []string{"Node.js", "Express", "Python", "Django", "GraphQL", "REST API Design"}},
			{ID: 3, Category: "Database", Items: []string{"MongoDB", "PostgreSQL", "MySQL", "Firebase", "Redis"}},
			{ID: 4, Category: "DevOps", Items: []string{"Docker", "Kubernetes", "CI/CD", "AWS", "GCP", "Vercel", "Netlify"}},
		},
		AdminCredentials: portfolio.AdminCredentials{
			Username:     seedAdminUsername,
			PasswordHash: hash,
		},
	}, nil
}
