package apierrors

const (
	MsgInvalidID            = "invalidId"
	MsgInvalidUserPayload   = "invalidUserPayload"
	MsgInvalidTeamPayload   = "invalidTeamPayload"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidMemberPayload = "invalidMemberPayload"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgInvalidToken         = "invalidToken"
	MsgForbiddenRole        = "forbiddenRole"
	MsgEmailTaken           = "emailTaken"
	MsgUserNotFound         = "userNotFound"
	MsgTeamNotFound         = "teamNotFound"
	MsgTaskNotFound         = "taskNotFound"
	MsgTaskAlreadyCompleted = "taskAlreadyCompleted"
	MsgNotTaskOwner         = "notTaskOwner"
	MsgTeamHasOpenTasks     = "teamHasOpenTasks"
	MsgTooManyRequests      = "tooManyRequests"
	MsgFailCreateUser       = "failCreateUser"
	MsgFailCreateSession    = "failCreateSession"
	MsgFailListTasks        = "failListTasks"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailListTeams        = "failListTeams"
	MsgFailCreateTeam       = "failCreateTeam"
	MsgFailDeleteTeam       = "failDeleteTeam"
	MsgFailAddMember        = "failAddMember"
)
