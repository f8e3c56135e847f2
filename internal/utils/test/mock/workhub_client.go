package mock

import (
	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
)

// WorkhubClient is a mocked WorkHub client
type WorkhubClient struct {
	workhub.Client
	SignInFn             func(creds workhub.SignInRequest) (auth.Session, workhub.Response, error)
	CreateUserFn         func(user workhub.User) (workhub.Response, error)
	GetUsersFn           func() (workhub.Response, error)
	GetUsersByIDFn       func(id string) (workhub.Response, error)
	UpdateUsersByIDFn    func(id string, user workhub.Record) (workhub.Response, error)
	DeleteUsersByIDFn    func(id string) (workhub.Response, error)
	CreateWorkFn         func(work workhub.Record) (workhub.Response, error)
	GetWorkFn            func() (workhub.Response, error)
	GetWorkByIDFn        func(id string) (workhub.Response, error)
	UpdateWorkByIDFn     func(id string, work workhub.Record) (workhub.Response, error)
	DeleteWorkByIDFn     func(id string) (workhub.Response, error)
	GetPostworkFn        func() (workhub.Response, error)
	GetPostworkByIDFn    func(id string) (workhub.Response, error)
	DeletePostworkByIDFn func(id string) (workhub.Response, error)
	CreateResumeFn       func(resume workhub.Record) (workhub.Response, error)
	GetResumeFn          func() (workhub.Response, error)
	GetResumeByIDFn      func(id string) (workhub.Response, error)
	SessionResumeFn      func() (workhub.Response, error)
	UpdateResumeByIDFn   func(id string, resume workhub.Record) (workhub.Response, error)
	DeleteResumeByIDFn   func(id string) (workhub.Response, error)
	StatusFn             func() error
}

// SignIn calls the mocked SignIn implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) SignIn(creds workhub.SignInRequest) (auth.Session, workhub.Response, error) {
	if wc.SignInFn != nil {
		return wc.SignInFn(creds)
	}
	return wc.Client.SignIn(creds)
}

// CreateUser calls the mocked CreateUser implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) CreateUser(user workhub.User) (workhub.Response, error) {
	if wc.CreateUserFn != nil {
		return wc.CreateUserFn(user)
	}
	return wc.Client.CreateUser(user)
}

// GetUsers calls the mocked GetUsers implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetUsers() (workhub.Response, error) {
	if wc.GetUsersFn != nil {
		return wc.GetUsersFn()
	}
	return wc.Client.GetUsers()
}

// GetUsersByID calls the mocked GetUsersByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetUsersByID(id string) (workhub.Response, error) {
	if wc.GetUsersByIDFn != nil {
		return wc.GetUsersByIDFn(id)
	}
	return wc.Client.GetUsersByID(id)
}

// UpdateUsersByID calls the mocked UpdateUsersByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) UpdateUsersByID(id string, user workhub.Record) (workhub.Response, error) {
	if wc.UpdateUsersByIDFn != nil {
		return wc.UpdateUsersByIDFn(id, user)
	}
	return wc.Client.UpdateUsersByID(id, user)
}

// DeleteUsersByID calls the mocked DeleteUsersByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) DeleteUsersByID(id string) (workhub.Response, error) {
	if wc.DeleteUsersByIDFn != nil {
		return wc.DeleteUsersByIDFn(id)
	}
	return wc.Client.DeleteUsersByID(id)
}

// CreateWork calls the mocked CreateWork implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) CreateWork(work workhub.Record) (workhub.Response, error) {
	if wc.CreateWorkFn != nil {
		return wc.CreateWorkFn(work)
	}
	return wc.Client.CreateWork(work)
}

// GetWork calls the mocked GetWork implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetWork() (workhub.Response, error) {
	if wc.GetWorkFn != nil {
		return wc.GetWorkFn()
	}
	return wc.Client.GetWork()
}

// GetWorkByID calls the mocked GetWorkByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetWorkByID(id string) (workhub.Response, error) {
	if wc.GetWorkByIDFn != nil {
		return wc.GetWorkByIDFn(id)
	}
	return wc.Client.GetWorkByID(id)
}

// UpdateWorkByID calls the mocked UpdateWorkByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) UpdateWorkByID(id string, work workhub.Record) (workhub.Response, error) {
	if wc.UpdateWorkByIDFn != nil {
		return wc.UpdateWorkByIDFn(id, work)
	}
	return wc.Client.UpdateWorkByID(id, work)
}

// DeleteWorkByID calls the mocked DeleteWorkByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) DeleteWorkByID(id string) (workhub.Response, error) {
	if wc.DeleteWorkByIDFn != nil {
		return wc.DeleteWorkByIDFn(id)
	}
	return wc.Client.DeleteWorkByID(id)
}

// GetPostwork calls the mocked GetPostwork implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetPostwork() (workhub.Response, error) {
	if wc.GetPostworkFn != nil {
		return wc.GetPostworkFn()
	}
	return wc.Client.GetPostwork()
}

// GetPostworkByID calls the mocked GetPostworkByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetPostworkByID(id string) (workhub.Response, error) {
	if wc.GetPostworkByIDFn != nil {
		return wc.GetPostworkByIDFn(id)
	}
	return wc.Client.GetPostworkByID(id)
}

// DeletePostworkByID calls the mocked DeletePostworkByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) DeletePostworkByID(id string) (workhub.Response, error) {
	if wc.DeletePostworkByIDFn != nil {
		return wc.DeletePostworkByIDFn(id)
	}
	return wc.Client.DeletePostworkByID(id)
}

// CreateResume calls the mocked CreateResume implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) CreateResume(resume workhub.Record) (workhub.Response, error) {
	if wc.CreateResumeFn != nil {
		return wc.CreateResumeFn(resume)
	}
	return wc.Client.CreateResume(resume)
}

// GetResume calls the mocked GetResume implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetResume() (workhub.Response, error) {
	if wc.GetResumeFn != nil {
		return wc.GetResumeFn()
	}
	return wc.Client.GetResume()
}

// GetResumeByID calls the mocked GetResumeByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) GetResumeByID(id string) (workhub.Response, error) {
	if wc.GetResumeByIDFn != nil {
		return wc.GetResumeByIDFn(id)
	}
	return wc.Client.GetResumeByID(id)
}

// SessionResume calls the mocked SessionResume implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) SessionResume() (workhub.Response, error) {
	if wc.SessionResumeFn != nil {
		return wc.SessionResumeFn()
	}
	return wc.Client.SessionResume()
}

// UpdateResumeByID calls the mocked UpdateResumeByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) UpdateResumeByID(id string, resume workhub.Record) (workhub.Response, error) {
	if wc.UpdateResumeByIDFn != nil {
		return wc.UpdateResumeByIDFn(id, resume)
	}
	return wc.Client.UpdateResumeByID(id, resume)
}

// DeleteResumeByID calls the mocked DeleteResumeByID implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) DeleteResumeByID(id string) (workhub.Response, error) {
	if wc.DeleteResumeByIDFn != nil {
		return wc.DeleteResumeByIDFn(id)
	}
	return wc.Client.DeleteResumeByID(id)
}

// Status calls the mocked Status implementation if provided,
// otherwise the call falls back to the underlying workhub.Client implementation.
// NOTE: this may panic if the underlying workhub.Client is left undefined
func (wc WorkhubClient) Status() error {
	if wc.StatusFn != nil {
		return wc.StatusFn()
	}
	return wc.Client.Status()
}
