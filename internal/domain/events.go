package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanCompleted EventType = "ScanCompleted"
	EventRootSelected  EventType = "RootSelected"
	EventFileDeleted   EventType = "FileDeleted"
	EventDeleteFailed  EventType = "DeleteFailed"
	EventFolderOpened  EventType = "FolderOpened"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanCompletedEvent is emitted after every scan
type ScanCompletedEvent struct {
	Summary ScanSummary
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// RootSelectedEvent is emitted when the user picks a folder
type RootSelectedEvent struct {
	Root string
}

func (e RootSelectedEvent) Type() EventType { return EventRootSelected }

// FileDeletedEvent is emitted when a delete succeeds
type FileDeletedEvent struct {
	Path string
}

func (e FileDeletedEvent) Type() EventType { return EventFileDeleted }

// DeleteFailedEvent is emitted when a delete fails
type DeleteFailedEvent struct {
	Path string
	Err  error
}

func (e DeleteFailedEvent) Type() EventType { return EventDeleteFailed }

// FolderOpenedEvent is emitted when the platform opener was asked to reveal a folder
type FolderOpenedEvent struct {
	Dir string
}

func (e FolderOpenedEvent) Type() EventType { return EventFolderOpened }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Existing bool // false when defaults were used
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
