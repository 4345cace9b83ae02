package service

import "github.com/studybuddy-app/classroom-api/internal/repository"

// repositoryIsUnique shields services from the driver-level detail of how a
// unique-constraint conflict surfaces.
func repositoryIsUnique(err error) bool {
	return repository.IsUniqueViolation(err)
}
