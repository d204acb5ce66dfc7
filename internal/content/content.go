// Package content is the static copy of the portfolio plus two small
// timed-text helpers used by the page hosts.
package content

var AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
different language, experimenting with tools, or solving tricky problems.
When I'm not coding, you'll usually find me training Muay Thai, shooting pool with friends,
or chasing down a new challenge outside the screen.`

type Project struct {
	Title       string
	Description string
	Tags        []string
}

var Projects = []Project{
	{
		Title:       "Terminal Mail",
		Description: "A terminal-based email client built in Go with fuzzy finding, using the Charmbracelet TUI framework and go-imap.",
		Tags:        []string{"Go", "TUI", "IMAP"},
	},
	{
		Title:       "Terminal Music",
		Description: "A terminal music streaming app with an elegant TUI, leveraging yt-dlp and mpv for YouTube Music playback from the command line.",
		Tags:        []string{"Go", "TUI"},
	},
	{
		Title:       "Game Recommender",
		Description: "A web app that uses TF-IDF vectorization and cosine similarity to recommend games from content analysis, with interactive charts and review filters.",
		Tags:        []string{"Python", "ML"},
	},
	{
		Title:       "Folio",
		Description: "This site: Go and gin on the server, HTMX for fragments, and a particle engine that paints the same scenes in the browser, a terminal or a desktop window.",
		Tags:        []string{"Go", "gin", "HTMX"},
	},
}

type Skill struct {
	Name  string
	Level int // percent
}

type SkillGroup struct {
	Category string
	Skills   []Skill
}

var Skills = []SkillGroup{
	{"Frontend", []Skill{{"HTML/CSS", 90}, {"JavaScript", 85}, {"HTMX", 80}, {"Tailwind CSS", 85}}},
	{"Backend", []Skill{{"Go", 85}, {"SQL", 75}, {"REST API", 80}, {"WebSockets", 70}}},
	{"Design & Video", []Skill{{"Premiere Pro", 80}, {"Figma", 75}, {"UI/UX Design", 75}}},
}

// Entry is one timeline row: a job or a course of study.
type Entry struct {
	Title     string
	Place     string
	StartDate string
	EndDate   string
	LogoPath  string
	Bullets   []string
}

var Work = []Entry{
	{
		Title:     "Presentation Expert",
		Place:     "Target",
		StartDate: "Aug 2023",
		EndDate:   "Present",
		LogoPath:  "images/TargetLogo.jpg",
		Bullets: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
		},
	},
	{
		Title:     "Manager",
		Place:     "Jasons Catered Events",
		StartDate: "Aug 2016",
		EndDate:   "Present",
		LogoPath:  "images/jasonsCateringLogo.png",
		Bullets: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems",
		},
	},
}

var Education = []Entry{
	{
		Title:     "Bachelor of Computer Science",
		Place:     "Western Governors University",
		StartDate: "Sept 2019",
		EndDate:   "May 2023",
		LogoPath:  "images/WGU-logo.png",
		Bullets: []string{
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
	},
	{
		Title:     "Project Management",
		Place:     "CompTIA",
		StartDate: "July 2022",
		EndDate:   "Present",
		LogoPath:  "images/comptiaCert.png",
		Bullets:   []string{"Certified in agile project management methodology"},
	},
}

type Testimonial struct {
	Name   string
	Role   string
	Quote  string
	Rating int
}

var Testimonials = []Testimonial{
	{"Alex Johnson", "YouTube Creator", "The quality and creativity brought to each project is exceptional.", 5},
	{"Priya Sharma", "Startup Founder", "Working together on our website redesign was a game-changer.", 5},
	{"Michael Chen", "Marketing Director", "Delivered ahead of schedule and exceeded our expectations.", 4},
}

// Stat is a headline number animated with a Counter.
type Stat struct {
	Label  string
	Value  int
	Suffix string
}

var Stats = []Stat{
	{"Projects shipped", 12, "+"},
	{"Hackathons", 10, "+"},
	{"Cups of coffee", 999, ""},
}

var Jokes = []string{
	"My code works perfectly... until someone uses it.",
	"I wrote clean code once. Then I blinked.",
	"I'm not lazy, I'm just on energy saving mode.",
	"It's not a bug, it's an undocumented feature.",
	"Why do programmers prefer dark mode? Because light attracts bugs.",
}

var LoadingPhrases = []string{
	"Compiling excuses for bugs...",
	"Reticulating splines...",
	"Swapping time and space...",
	"Tokenizing real life...",
	"Bending the spoon...",
}
