package suggest

import (
	"fmt"
	"strings"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// The generators below each cover one project category. A generator whose
// gate passed always emits at least one candidate: the specific sub-conditions
// are tried first, and a general fallback covers the rest. All candidates
// carry MatchScore zero; the scorer fills it in later.

func generateMLProjects(level types.Difficulty, focus ResearchFocus, interests []string) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}
	primary := firstOr(focus.PrimaryDomains, "")

	hasNLP := interestsMention(interests, "language", "text")
	hasCV := interestsMention(interests, "vision", "image")

	if hasNLP || interestsMention(interests, "nlp") {
		projects = append(projects, types.ProjectSuggestion{
			Title: titleWithDomain(primary, "Natural Language Processing System"),
			Description: fmt.Sprintf("Develop an advanced NLP system specifically for %s domain that can process, "+
				"analyze, and extract insights from textual data relevant to your field.", orDefault(primary, "research")),
			SkillsRequired:    []string{"Python", "NLP", "Transformers", "BERT", "spaCy"},
			ResearchAreas:     []string{"Natural Language Processing", orDefault(primary, "Text Analysis")},
			Difficulty:        level,
			EstimatedDuration: durationByLevel(level, "3-4 months", "2-3 months"),
			Category:          "AI/ML - NLP",
		})
	}

	if hasCV || interestsMention(interests, "computer vision") {
		projects = append(projects, types.ProjectSuggestion{
			Title: titleWithDomain(primary, "Computer Vision Application"),
			Description: fmt.Sprintf("Build a computer vision system tailored for %s that can analyze, classify, "+
				"and extract patterns from visual data.", orDefault(primary, "your research domain")),
			SkillsRequired:    []string{"Python", "Computer Vision", "OpenCV", "CNN", "PyTorch"},
			ResearchAreas:     []string{"Computer Vision", orDefault(primary, "Image Analysis")},
			Difficulty:        level,
			EstimatedDuration: "2-4 months",
			Category:          "AI/ML - Computer Vision",
		})
	}

	if focus.BioFocused {
		projects = append(projects, types.ProjectSuggestion{
			Title: "AI-Powered Biomedical Research Assistant",
			Description: "Create an intelligent system that assists in biomedical research by analyzing medical " +
				"literature, predicting drug interactions, and identifying potential research directions.",
			SkillsRequired:    []string{"Python", "Bioinformatics", "Machine Learning", "Medical Data", "Research"},
			ResearchAreas:     []string{"Bioinformatics", "Medical AI", "Healthcare Technology"},
			Difficulty:        types.Advanced,
			EstimatedDuration: "4-6 months",
			Category:          "AI/ML - Biomedical",
		})
	}

	if focus.SecurityFocused {
		projects = append(projects, types.ProjectSuggestion{
			Title: "ML-Based Cybersecurity Threat Detection",
			Description: "Develop machine learning models for real-time cybersecurity threat detection and " +
				"response, incorporating privacy-preserving techniques.",
			SkillsRequired:    []string{"Python", "Cybersecurity", "Machine Learning", "Anomaly Detection", "Privacy"},
			ResearchAreas:     []string{"Cybersecurity", "Machine Learning", "Privacy"},
			Difficulty:        level,
			EstimatedDuration: "3-5 months",
			Category:          "AI/ML - Security",
		})
	}

	// General project only when no specific interest matched.
	if len(projects) == 0 {
		projects = append(projects, types.ProjectSuggestion{
			Title: "Personalized Research Recommendation Engine",
			Description: "Build an AI system that analyzes academic papers, researcher profiles, and citation " +
				"networks to recommend relevant research directions and collaborations.",
			SkillsRequired:    []string{"Python", "Machine Learning", "Graph Neural Networks", "Recommendation Systems"},
			ResearchAreas:     []string{"Machine Learning", "Information Retrieval", "Academic Analytics"},
			Difficulty:        level,
			EstimatedDuration: "3-4 months",
			Category:          "AI/ML",
		})
	}

	return projects
}

func generateWebProjects(level types.Difficulty, focus ResearchFocus, interests []string) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}
	mainDomain := firstOr(focus.PrimaryDomains, "research")

	projects = append(projects, types.ProjectSuggestion{
		Title: capitalize(mainDomain) + " Collaboration Platform",
		Description: fmt.Sprintf("Create a specialized web platform for %s researchers that facilitates "+
			"collaboration, project management, and knowledge sharing within your specific field.", mainDomain),
		SkillsRequired:    []string{"React", "Next.js", "Node.js", "Database Design", "API Development"},
		ResearchAreas:     []string{"Human-Computer Interaction", "Social Computing", mainDomain},
		Difficulty:        level,
		EstimatedDuration: "2-4 months",
		Category:          "Web Development - " + mainDomain,
	})

	if focus.DataFocused || interestsMention(interests, "data") {
		projects = append(projects, types.ProjectSuggestion{
			Title: fmt.Sprintf("Interactive %s Data Dashboard", mainDomain),
			Description: fmt.Sprintf("Build a dynamic web application that visualizes %s research data, trends, "+
				"and patterns with real-time updates and interactive features.", mainDomain),
			SkillsRequired:    []string{"JavaScript", "D3.js", "React", "Data Visualization", "APIs"},
			ResearchAreas:     []string{"Information Visualization", "Data Science", mainDomain},
			Difficulty:        types.Intermediate,
			EstimatedDuration: "2-3 months",
			Category:          "Data Visualization",
		})
	}

	if level == types.Advanced {
		projects = append(projects, types.ProjectSuggestion{
			Title: mainDomain + " Educational Platform",
			Description: fmt.Sprintf("Develop an e-learning platform specifically designed for %s education with "+
				"adaptive learning paths, assessment tools, and progress tracking.", mainDomain),
			SkillsRequired:    []string{"React", "Learning Management", "Database", "User Authentication", "Progressive Web Apps"},
			ResearchAreas:     []string{"Educational Technology", "Human-Computer Interaction", mainDomain},
			Difficulty:        types.Advanced,
			EstimatedDuration: "3-5 months",
			Category:          "EdTech",
		})
	}

	return projects
}

func generateDataScienceProjects(level types.Difficulty, focus ResearchFocus, interests []string) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}
	mainDomain := firstOr(focus.PrimaryDomains, "research")

	projects = append(projects, types.ProjectSuggestion{
		Title: capitalize(mainDomain) + " Data Analysis Pipeline",
		Description: fmt.Sprintf("Develop an automated pipeline specifically for processing and analyzing %s data, "+
			"including domain-specific preprocessing, feature extraction, and statistical insights.", mainDomain),
		SkillsRequired:    []string{"Python", "Pandas", "Scikit-learn", "Data Analysis", "Statistics"},
		ResearchAreas:     []string{"Data Science", "Statistical Analysis", mainDomain},
		Difficulty:        level,
		EstimatedDuration: "2-3 months",
		Category:          "Data Science - " + mainDomain,
	})

	switch {
	case focus.BioFocused:
		projects = append(projects, types.ProjectSuggestion{
			Title: "Genomic Data Mining and Biomarker Discovery",
			Description: "Apply advanced data mining techniques to genomic and clinical datasets to discover " +
				"potential biomarkers and predict treatment outcomes.",
			SkillsRequired:    []string{"Python", "R", "Bioinformatics", "Genomics", "Machine Learning", "Statistics"},
			ResearchAreas:     []string{"Bioinformatics", "Genomics", "Precision Medicine"},
			Difficulty:        types.Advanced,
			EstimatedDuration: "4-6 months",
			Category:          "Biomedical Data Science",
		})
	case focus.SecurityFocused:
		projects = append(projects, types.ProjectSuggestion{
			Title: "Cybersecurity Analytics and Threat Intelligence",
			Description: "Develop data science solutions for analyzing security logs, network traffic, and threat " +
				"intelligence to identify patterns and predict cyber attacks.",
			SkillsRequired:    []string{"Python", "Security Analytics", "Network Analysis", "Machine Learning", "Threat Intelligence"},
			ResearchAreas:     []string{"Cybersecurity", "Data Science", "Network Security"},
			Difficulty:        types.Advanced,
			EstimatedDuration: "3-5 months",
			Category:          "Security Data Science",
		})
	case interestsMention(interests, "social", "behavior"):
		projects = append(projects, types.ProjectSuggestion{
			Title: "Social Media and Behavioral Data Analytics",
			Description: "Analyze social media data and user behavior patterns to understand trends, sentiment, " +
				"and social dynamics in your research domain.",
			SkillsRequired:    []string{"Python", "Social Network Analysis", "NLP", "Sentiment Analysis", "Data Visualization"},
			ResearchAreas:     []string{"Social Computing", "Behavioral Analytics", "Digital Humanities"},
			Difficulty:        types.Intermediate,
			EstimatedDuration: "2-4 months",
			Category:          "Social Data Science",
		})
	}

	return projects
}

func generateResearchProjects(scholar *types.ScholarProfile, level types.Difficulty, interests []string) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}
	primary := firstOr(interests, "")

	if len(scholar.Publications) > 0 {
		projects = append(projects, types.ProjectSuggestion{
			Title: fmt.Sprintf("Advanced %s Analytics Platform", orDefault(primary, "Research")),
			Description: fmt.Sprintf("Building on your publication history in %s, develop a comprehensive analytics "+
				"platform that tracks research impact, collaboration networks, and emerging trends in your domain.",
				orDefault(primary, "your field")),
			SkillsRequired:    []string{"Data Analysis", "Machine Learning", "Network Analysis", "API Integration", "Research Methods"},
			ResearchAreas:     []string{"Bibliometrics", "Research Analytics", orDefault(primary, "Information Science")},
			Difficulty:        level,
			EstimatedDuration: "3-4 months",
			Category:          "Research Analytics - " + orDefault(primary, "General"),
		})
	}

	if scholar.TotalCitations > 50 && len(scholar.Publications) > 5 {
		projects = append(projects, types.ProjectSuggestion{
			Title: "AI-Powered Literature Review and Gap Analysis Tool",
			Description: fmt.Sprintf("Leveraging your research expertise and publication record, create an advanced "+
				"tool that automatically surveys literature in %s, identifies research gaps, and suggests novel "+
				"research directions.", orDefault(primary, "your field")),
			SkillsRequired:    []string{"NLP", "Machine Learning", "Information Retrieval", "Text Analysis", "Academic APIs"},
			ResearchAreas:     []string{"Natural Language Processing", "Information Retrieval", orDefault(primary, "Research Methods")},
			Difficulty:        types.Advanced,
			EstimatedDuration: "4-5 months",
			Category:          "Research Tools",
		})
	}

	if scholar.HIndex > 5 {
		projects = append(projects, types.ProjectSuggestion{
			Title: "Research Collaboration Recommendation Engine",
			Description: fmt.Sprintf("Using your established research profile and network, build an intelligent "+
				"system that recommends potential collaborators, funding opportunities, and research partnerships "+
				"in %s.", orDefault(primary, "your field")),
			SkillsRequired:    []string{"Graph Analytics", "Machine Learning", "Network Science", "Academic APIs", "Recommendation Systems"},
			ResearchAreas:     []string{"Social Network Analysis", "Research Collaboration", orDefault(primary, "Academic Networks")},
			Difficulty:        types.Advanced,
			EstimatedDuration: "3-5 months",
			Category:          "Academic Networking",
		})
	}

	return projects
}

func generateInterdisciplinaryProjects(level types.Difficulty, focus ResearchFocus, interests []string) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}
	primary := firstOr(focus.PrimaryDomains, "")

	var secondary []string
	if len(interests) > 1 {
		secondary = interests[1:min(len(interests), 3)]
	}

	if primary != "" && len(secondary) > 0 {
		projects = append(projects, types.ProjectSuggestion{
			Title: fmt.Sprintf("%s and %s Integration Platform", primary, secondary[0]),
			Description: fmt.Sprintf("Build a comprehensive system that bridges %s and %s, enabling "+
				"cross-disciplinary research, collaboration, and knowledge discovery.", primary, secondary[0]),
			SkillsRequired:    []string{"Knowledge Representation", "Data Integration", "API Development", "Cross-domain Analysis"},
			ResearchAreas:     []string{primary, secondary[0], "Interdisciplinary Studies"},
			Difficulty:        level,
			EstimatedDuration: "3-5 months",
			Category:          fmt.Sprintf("Interdisciplinary - %s/%s", primary, secondary[0]),
		})
	}

	if focus.HCIFocused || interestsMention(interests, "interface", "user") {
		domain := orDefault(primary, "research")
		projects = append(projects, types.ProjectSuggestion{
			Title: fmt.Sprintf("Adaptive %s Interface Design", domain),
			Description: fmt.Sprintf("Design and develop adaptive user interfaces specifically for %s tools that "+
				"automatically adjust based on user expertise, research context, and domain-specific workflows.", domain),
			SkillsRequired:    []string{"UX/UI Design", "JavaScript", "User Research", "Adaptive Systems", "Domain Knowledge"},
			ResearchAreas:     []string{"Human-Computer Interaction", "Adaptive Systems", domain},
			Difficulty:        types.Intermediate,
			EstimatedDuration: "2-3 months",
			Category:          "HCI - " + domain,
		})
	}

	if len(projects) == 0 {
		projects = append(projects, types.ProjectSuggestion{
			Title: "Multi-Domain Knowledge Discovery System",
			Description: "Create a system that discovers connections and patterns across multiple research domains, " +
				"facilitating interdisciplinary insights and collaboration opportunities.",
			SkillsRequired:    []string{"Graph Databases", "Machine Learning", "Data Mining", "Semantic Web", "API Integration"},
			ResearchAreas:     []string{"Knowledge Management", "Information Systems", "Interdisciplinary Studies"},
			Difficulty:        level,
			EstimatedDuration: "3-5 months",
			Category:          "Knowledge Systems",
		})
	}

	return projects
}

func generateOpenSourceProjects(tech TechSkills, level types.Difficulty, interests []string) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}
	primaryDomain := firstOr(interests, "research")
	hasAdvancedSkills := len(tech.ProgrammingLanguages) > 2

	toolkitDifficulty := types.Intermediate
	if level == types.Beginner {
		toolkitDifficulty = types.Beginner
	}
	projects = append(projects, types.ProjectSuggestion{
		Title: fmt.Sprintf("Open Source %s Toolkit", capitalize(primaryDomain)),
		Description: fmt.Sprintf("Contribute to or create open-source tools specifically designed for %s "+
			"researchers, including data collection, analysis, and visualization utilities tailored to your field.",
			primaryDomain),
		SkillsRequired:    []string{"Programming", "Software Engineering", "Documentation", "Testing", "Git", "Open Source Development"},
		ResearchAreas:     []string{"Software Engineering", "Research Methods", primaryDomain},
		Difficulty:        toolkitDifficulty,
		EstimatedDuration: "1-3 months",
		Category:          "Open Source - " + primaryDomain,
	})

	if hasAdvancedSkills && level != types.Beginner {
		projects = append(projects, types.ProjectSuggestion{
			Title: fmt.Sprintf("%s Reproducibility and Collaboration Platform", primaryDomain),
			Description: fmt.Sprintf("Develop an open-source platform specifically for %s research that ensures "+
				"reproducibility through containerization, version control, and standardized workflows.", primaryDomain),
			SkillsRequired:    []string{"Docker", "Git", "CI/CD", "Documentation", "Testing", "Research Workflows"},
			ResearchAreas:     []string{"Open Science", "Reproducible Research", primaryDomain},
			Difficulty:        level,
			EstimatedDuration: "2-4 months",
			Category:          "Open Science - " + primaryDomain,
		})
	}

	if level == types.Advanced {
		projects = append(projects, types.ProjectSuggestion{
			Title: fmt.Sprintf("%s Education and Training Resources", primaryDomain),
			Description: fmt.Sprintf("Create open educational resources, tutorials, and training materials for %s "+
				"research methods, making advanced techniques accessible to the broader research community.", primaryDomain),
			SkillsRequired:    []string{"Educational Design", "Content Creation", "Web Development", "Video Production", "Community Building"},
			ResearchAreas:     []string{"Educational Technology", "Open Education", primaryDomain},
			Difficulty:        types.Intermediate,
			EstimatedDuration: "2-4 months",
			Category:          "Open Education - " + primaryDomain,
		})
	}

	return projects
}

// interestsMention reports whether any interest contains any of the given
// substrings, case-insensitively.
func interestsMention(interests []string, substrings ...string) bool {
	for _, interest := range interests {
		lower := strings.ToLower(interest)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

// titleWithDomain prefixes a title with the user's primary domain when known.
func titleWithDomain(domain, title string) string {
	if domain == "" {
		return title
	}
	return domain + " " + title
}

func durationByLevel(level types.Difficulty, advanced, other string) string {
	if level == types.Advanced {
		return advanced
	}
	return other
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
