package handler

import "net/url"

func segment(name string) string {
	return url.PathEscape(name) + "/"
}

func entryURL() string { return "/api/" }
func membersURL() string { return "/api/members/" }
func projectsURL() string { return "/api/projects/" }
func memberURL(m string) string { return membersURL() + segment(m) }

func projectURL(p string) string { return projectsURL() + segment(p) }
func projectMembersURL(p string) string { return projectURL(p) + "members/" }
func phasesURL(p string) string { return projectURL(p) + "phases/" }
func costsURL(p string) string { return projectURL(p) + "costs/" }
func hoursURL(p string) string { return projectURL(p) + "hours/" }

func projectMemberURL(p, m string) string { return projectMembersURL(p) + segment(m) }
func phaseURL(p, ph string) string { return phasesURL(p) + segment(ph) }
func tasksURL(p, ph string) string { return phaseURL(p, ph) + "tasks/" }
func costURL(p, id string) string { return costsURL(p) + segment(id) }
func hourURL(p, id string) string { return hoursURL(p) + segment(id) }

func taskURL(p, ph, t string) string { return tasksURL(p, ph) + segment(t) }
func taskMembersURL(p, ph, t string) string { return taskURL(p, ph, t) + "members/" }

func taskMemberURL(p, ph, t, m string) string { return taskMembersURL(p, ph, t) + segment(m) }
