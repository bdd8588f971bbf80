package repository

import (
	"gorm.io/gorm"

	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/internal/models"
)

type Repositories struct {
	UserRepository interfaces.UserRepository
	FileRepository interfaces.FileRepository
	NoteRepository interfaces.NoteRepository
}

func InitRepositories(db *gorm.DB, storage interfaces.StorageService) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db),
		FileRepository: NewFileRepository(db, storage),
		NoteRepository: NewNoteRepository(db),
	}
}

// MigrateDB creates or updates the users, files and notes tables.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.File{},
		&models.Note{},
	)
}
