package service

// seedCategory is one predefined category with its default habits.
type seedCategory struct {
	Name   string
	Habits []string
}

// defaultCatalog is the baseline dataset every user starts from. Seeding is
// keyed on category name and (habit name, category), so re-running it never
// creates duplicates.
var defaultCatalog = []seedCategory{
	{
		Name: "Health & Wellness",
		Habits: []string{
			"Drink 8 Glasses of Water",
			"Walk 2,000+ Steps",
			"Meditate for 10 Minutes",
			"Sleep Before 11 PM",
			"Do 15 Minutes of Exercise",
			"Avoid Sugar for a Day",
			"No Junk Food Today",
		},
	},
	{
		Name: "Learning & Growth",
		Habits: []string{
			"Read for 15–30 Minutes",
			"Watch an Educational Video",
			"Revise a Past Topic",
			"Listen to a Podcast",
			"Practice Mind Mapping",
			"Do 1 Page of Workbook",
			"Write Down a New Word",
		},
	},
	{
		Name: "Productivity",
		Habits: []string{
			"Plan Your Day",
			"Complete Top 3 Tasks",
			"Limit Social Media Time",
			"Set Tomorrow’s Agenda",
			"Organize Emails/Folders",
			"Track Your Screen Time",
			"Take 2 Short Breaks",
		},
	},
	{
		Name: "Finance & Discipline",
		Habits: []string{
			"Track Daily Expenses",
			"Review Monthly Budget",
			"Save ₹100 Today",
			"Don’t Order Food Online",
			"Use Cashback / Offers",
			"Set a Daily Spending Limit",
			"Use Cash Instead of UPI",
		},
	},
	{
		Name: "Personal & Lifestyle",
		Habits: []string{
			"No Screen 1 Hour Before Bed",
			"Take 1 Photo Daily",
			"Practice Gratitude",
			"Compliment Someone",
			"Say “No” to One Thing",
			"Smile at 3 People",
			"Clean 1 Small Area",
		},
	},
}
