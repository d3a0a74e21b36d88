package quizflow

// The selection catalog is fixed. The backend and the LLM generator both
// take free-form strings, so extending this list is all it takes to add
// a class or subject.

var classLevels = []string{
	"Class 6",
	"Class 7",
	"Class 8",
	"Class 9",
	"Class 10",
	"Class 11",
	"Class 12",
}

var subjectsByBand = map[string][]string{
	"middle": {"Mathematics", "Science", "Social Science", "English"},
	"senior": {"Mathematics", "Physics", "Chemistry", "Biology", "English"},
}

var chaptersBySubject = map[string][]string{
	"Mathematics":    {"Number Systems", "Algebra", "Linear Equations", "Quadratic Equations", "Geometry", "Trigonometry", "Statistics", "Probability"},
	"Science":        {"Matter Around Us", "Atoms and Molecules", "Motion", "Force and Laws of Motion", "Gravitation", "Work and Energy", "Sound"},
	"Physics":        {"Units and Measurement", "Kinematics", "Laws of Motion", "Work, Energy and Power", "Thermodynamics", "Waves", "Electrostatics", "Current Electricity"},
	"Chemistry":      {"Structure of Atom", "Chemical Bonding", "States of Matter", "Equilibrium", "Redox Reactions", "Organic Chemistry Basics"},
	"Biology":        {"Cell Structure", "Plant Physiology", "Human Physiology", "Genetics", "Evolution", "Ecology"},
	"Social Science": {"French Revolution", "Nazism and the Rise of Hitler", "Physical Features of India", "Climate", "Democracy", "The Story of Village Palampur"},
	"English":        {"Reading Comprehension", "Grammar", "Writing Skills", "Literature", "Poetry"},
}

// classes returns the selectable class levels.
func classes() []string {
	return classLevels
}

// subjects returns the subjects offered for a class level.
func subjects(classLevel string) []string {
	switch classLevel {
	case "Class 11", "Class 12":
		return subjectsByBand["senior"]
	default:
		return subjectsByBand["middle"]
	}
}

// chapters returns the chapters for a subject, with a catch-all so an
// unknown subject still yields something selectable.
func chapters(subject string) []string {
	if ch, ok := chaptersBySubject[subject]; ok {
		return ch
	}
	return []string{"Chapter 1", "Chapter 2", "Chapter 3"}
}
