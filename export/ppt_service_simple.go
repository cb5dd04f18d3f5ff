package export

// PPTExportService handles PowerPoint generation using GoPPT (pure Go, zero dependencies)
type PPTExportService struct {
	service *GoPPTService
}

// NewPPTExportService creates a new PPT export service
func NewPPTExportService() *PPTExportService {
	return &PPTExportService{
		service: NewGoPPTService(),
	}
}

// ExportDeck writes the artifact as a PPTX file
func (s *PPTExportService) ExportDeck(art *Artifact) ([]byte, error) {
	return s.service.ExportDeck(art)
}
