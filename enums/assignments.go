package enums

const (
	AssignmentTypeAssignment = "assignment"
	AssignmentTypeProject    = "project"
	AssignmentTypeLab        = "lab"
)
