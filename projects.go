package blogen

// defaultProjects is the compiled-in project list, rendered on the home
// page in declaration order. A config file may override it.
var defaultProjects = []Project{
	{Title: "visualizations with canvas api", URL: "https://rhaeguard.github.io/visualizations/"},
	{Title: "phont - rendering ttf fonts from scratch", URL: "https://github.com/rhaeguard/phont"},
	{Title: "rgx - a tiny regex engine", URL: "https://github.com/rhaeguard/rgx"},
	{Title: "shum - a concatenative language for jvm", URL: "https://github.com/rhaeguard/shum"},
	{Title: "snake - a snake game with procedurally-generated maps", URL: "https://github.com/rhaeguard/snake"},
	{Title: "cells - a spreadsheet with lisp-like formulas", URL: "https://github.com/rhaeguard/cells"},
}

// DefaultProjects returns a copy of the compiled-in project list.
func DefaultProjects() []Project {
	projects := make([]Project, len(defaultProjects))
	copy(projects, defaultProjects)
	return projects
}
