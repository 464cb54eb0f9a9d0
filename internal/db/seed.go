package db

// ExampleSeedTerms returns the built-in starter glossary used when no
// glossary file is configured.
func ExampleSeedTerms() []SeedTerm {
	return []SeedTerm{
		{"API", "Application Programming Interface - a set of rules that allows different software applications to communicate with each other."},
		{"REST", "Representational State Transfer - an architectural style for designing networked applications."},
		{"JSON", "JavaScript Object Notation - a lightweight data-interchange format that is easy for humans to read and write."},
		{"SQL", "Structured Query Language - a domain-specific language used for managing and manipulating relational databases."},
		{"Git", "A distributed version control system for tracking changes in source code during software development."},
		{"Docker", "A platform that uses OS-level virtualization to deliver software in packages called containers."},
		{"FYI", "For Your Information - indicates that information is being passed along for awareness, without requiring any specific action."},
		{"ASAP", "As Soon As Possible - used to indicate urgency in completing a task or providing information."},
		{"EOD", "End of Day - refers to the end of the business day, commonly used as a deadline indicator."},
		{"COB", "Close of Business - similar to EOD, indicates the end of the working day."},
		{"ETA", "Estimated Time of Arrival - used to indicate when something is expected to be completed or delivered."},
		{"OOO", "Out of Office - indicates that someone is not available at work, usually used in email automatic replies."},
		{"WFH", "Work From Home - indicates that an employee is working remotely from their home."},
		{"IMO", "In My Opinion - used to express a personal view or judgment on a matter."},
	}
}
