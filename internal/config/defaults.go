package config

// defaultReport returns the reference deployment definition. A YAML
// definition file can override the list-shaped values per run.
func defaultReport() ReportConfig {
	return ReportConfig{
		Title:      "Weekly Analysis Report",
		Team:       "IT Helpdesk",
		WindowDays: 7,
		StoreCatalog: []string{
			"Jenkins", "Neon", "Harlan 1", "Harlan 2", "Hyden", "PMM",
			"Isom", "Whitesburg", "Hazard 2", "Ermine", "Hindman 2",
			"Hindman 1", "Martin", "Jackson", "Hazard 3", "Dryfork",
			"Pound", "Catnip (Nicholasville)", "Marrowbone", "Elkhorn City",
			"Chloe", "Caney", "Belfrey", "Phelps", "Virgie", "Harold",
			"Allen", "Goody", "Zebulon", "Pikeville", "South", "North",
			"Prestonsburg 1", "Ivel", "Justiceville", "Salyersville",
			"Grundy", "West Liberty", "Prestonsburg 2", "Prestonsburg 3",
		},
		ExcludedRequesters: []string{"Jacob Sexton"},
		RequesterAliases: []Alias{
			{From: "Isom Deli", To: "Isom"},
		},
		TechnicianNames: []string{"Jacob", "Richard", "Jon", "Rick"},
	}
}
