package logic

// RequireNotBlank checks that a user-supplied field is non-empty.
func RequireNotBlank(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive(value int, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireOnMenu checks that a catalog lookup found the item.
func RequireOnMenu(found bool, name string) *CommandError {
	if !found {
		return NewFailedPreconditionf("%s: %q", ErrMsgItemNotOnMenu, name)
	}
	return nil
}

// RequireInRange checks that index addresses one of n positions.
func RequireInRange(index, n int, errMsg string) *CommandError {
	if index < 0 || index >= n {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}
