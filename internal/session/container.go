package session

type SessionContainer struct {
	Manager *Manager
	Handler *Handler
}

func NewSessionContainer(source QuestionSource, sink AttemptSink) *SessionContainer {
	manager := NewManager(source, sink)
	handler := NewHandler(manager)

	return &SessionContainer{
		Manager: manager,
		Handler: handler,
	}
}
