package usecase

// ScoreAnswers is exported for testing
var ScoreAnswers = scoreAnswers

// BuildPriorityActions is exported for testing
var BuildPriorityActions = buildPriorityActions
