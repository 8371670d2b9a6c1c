package usecase

// Recorder receives business events worth counting
type Recorder interface {
	CatalogLoaded(source string, ok bool)
	CartMutated(action string)
}

// NopRecorder discards all events
type NopRecorder struct{}

func (NopRecorder) CatalogLoaded(string, bool) {}
func (NopRecorder) CartMutated(string) {}
