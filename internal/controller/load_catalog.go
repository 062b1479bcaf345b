package controller

import "context"

func (i *implementation) loadCatalog(ctx context.Context, s *session) (outcome, error) {
	name, err := s.ask("Enter file name: ")
	if err != nil {
		return "", err
	}

	req := fileRequest{File: name}
	if i.invalid(s, req.Validate(), "load_catalog") {
		return outcomeInvalid, nil
	}

	path := i.path(req.File)
	if err = i.storageUseCase.Import(ctx, path); err != nil {
		s.say("Library was not loaded, %s", i.convertErr(err))
		return outcomeError, nil
	}

	s.say("Library loaded from %s", path)
	return outcomeOK, nil
}
