package handler

import "promana-go/internal/hypermedia"

const datePattern = "^[0-9]{4}-[01][0-9]-[0-3][0-9]$"

const (
	projectSchemaName       = "project"
	memberSchemaName        = "member"
	phaseSchemaName         = "phase"
	taskSchemaName          = "task"
	costSchemaName          = "cost"
	hourEntrySchemaName     = "hour-entry"
	projectMemberSchemaName = "project-member"
	taskMemberSchemaName    = "task-member"
)

type schema map[string]any

func object(required []string, props map[string]any) schema {
	s := schema{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func nameProp(description string) map[string]any {
	return map[string]any{"description": description, "type": "string", "minLength": 1}
}

func textProp(description string) map[string]any {
	return map[string]any{"description": description, "type": []string{"string", "null"}}
}

func dateProp(description string) map[string]any {
	return map[string]any{"description": description, "type": []string{"string", "null"}, "pattern": datePattern}
}

func numberProp(description string) map[string]any {
	return map[string]any{"description": description, "type": []string{"number", "null"}}
}

func statusProp(description string) map[string]any {
	return map[string]any{"description": description + " (NOT_STARTED, STARTED or FINISHED)", "type": "string"}
}

func projectSchema() schema {
	return object([]string{"name"}, map[string]any{
		"name":            nameProp("Name of the project"),
		"start":           dateProp("Start date of the project"),
		"end":             dateProp("End date of the project"),
		"budget":          numberProp("Budget of the project"),
		"avg_hourly_cost": numberProp("Average hourly cost"),
		"total_hours":     numberProp("Total hours"),
		"total_costs":     numberProp("Total costs"),
		"status":          statusProp("Status of the project"),
		"project_manager": textProp("Name of the managing member"),
	})
}

func memberSchema() schema {
	return object([]string{"name"}, map[string]any{
		"name":        nameProp("Name of the member"),
		"hourly_cost": numberProp("Hourly cost of the member"),
	})
}

func phaseSchema() schema {
	phaseStatus := statusProp("Status of the phase")
	phaseStatus["type"] = []string{"string", "null"}
	return object(nil, map[string]any{
		"name":     nameProp("Name of the phase"),
		"deadline": dateProp("Deadline of the phase"),
		"status":   phaseStatus,
	})
}

func taskSchema() schema {
	return object([]string{"name"}, map[string]any{
		"name":        nameProp("Name of the task"),
		"total_hours": numberProp("Total hours"),
		"total_cost":  numberProp("Total cost"),
		"start":       dateProp("Start date of the task"),
		"end":         dateProp("End date of the task"),
		"status":      statusProp("Status of the task"),
	})
}

func costSchema() schema {
	return object([]string{"name"}, map[string]any{
		"name":         nameProp("Name of the cost"),
		"description":  textProp("Description"),
		"hourly_price": numberProp("Hourly price"),
		"quantity":     numberProp("Quantity"),
		"phase":        textProp("Name of the phase the cost belongs to"),
	})
}

func hourEntrySchema() schema {
	return object(nil, map[string]any{
		"task":   textProp("Name of the task"),
		"member": textProp("Name of the member"),
		"date":   dateProp("Day the time was spent"),
		"time":   numberProp("Hours spent"),
	})
}

func projectMemberSchema() schema {
	return object([]string{"name", "task"}, map[string]any{
		"name": nameProp("Name of the member"),
		"task": nameProp("Name of the project task to assign the member to"),
	})
}

func taskMemberSchema() schema {
	return object([]string{"name"}, map[string]any{
		"name": nameProp("Name of the member"),
	})
}

func newValidator() *hypermedia.Validator {
	return hypermedia.NewValidator().
		MustRegister(projectSchemaName, projectSchema()).
		MustRegister(memberSchemaName, memberSchema()).
		MustRegister(phaseSchemaName, phaseSchema()).
		MustRegister(taskSchemaName, taskSchema()).
		MustRegister(costSchemaName, costSchema()).
		MustRegister(hourEntrySchemaName, hourEntrySchema()).
		MustRegister(projectMemberSchemaName, projectMemberSchema()).
		MustRegister(taskMemberSchemaName, taskMemberSchema())
}
