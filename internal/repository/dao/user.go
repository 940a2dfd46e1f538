package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jglopez/tappedout-api/internal/domain"
)

var (
	ErrUserNotFound     = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrUserDNIExists    = fmt.Errorf("a user with that DNI %w", domain.ErrConflict)
	ErrUserEmailExists  = fmt.Errorf("a user with that email %w", domain.ErrConflict)
	ErrGenderNotFound   = fmt.Errorf("gender %w", domain.ErrNotFound)
	ErrGenderExists     = fmt.Errorf("gender %w", domain.ErrConflict)
	ErrUserTypeNotFound = fmt.Errorf("user type %w", domain.ErrNotFound)
	ErrUserTypeExists   = fmt.Errorf("user type %w", domain.ErrConflict)
)

type Gender struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null;size:50"`
}

type UserType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null;size:50"`
}

type User struct {
	ID uint `gorm:"primaryKey"`

	DNI    string   `gorm:"column:dni;unique;not null;size:20"`
	TypeID uint     `gorm:"not null"`
	Type   UserType `gorm:"foreignKey:TypeID"`

	Email        string `gorm:"unique;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	FirstName    string `gorm:"not null;size:100"`
	LastName     string `gorm:"not null;size:100"`

	DateOfBirth time.Time `gorm:"not null"`
	GenderID    uint      `gorm:"not null"`
	Gender      Gender    `gorm:"foreignKey:GenderID"`

	Country string `gorm:"not null;size:100"`
	City    string `gorm:"not null;size:100"`
	Phone   string `gorm:"size:20"`
	Avatar  string `gorm:"size:255"`

	IsVerified bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		switch {
		case isUniqueViolation(result.Error, "uni_users_dni"):
			return User{}, ErrUserDNIExists
		case isUniqueViolation(result.Error, "uni_users_email"):
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Type").Preload("Gender").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByDNI(ctx context.Context, dni string) (User, error) {
	return d.findOne(ctx, "dni = ?", dni)
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	return d.findOne(ctx, "email = ?", email)
}

func (d *UserDAO) findOne(ctx context.Context, query string, args ...any) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Type").Preload("Gender").First(&user, append([]any{query}, args...)...)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	return d.findMany(ctx, d.db.WithContext(ctx))
}

func (d *UserDAO) FindByType(ctx context.Context, typeID uint) ([]User, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("type_id = ?", typeID))
}

func (d *UserDAO) FindByGender(ctx context.Context, genderID uint) ([]User, error) {
	return d.findMany(ctx, d.db.WithContext(ctx).Where("gender_id = ?", genderID))
}

func (d *UserDAO) FindByLocation(ctx context.Context, country, city string) ([]User, error) {
	tx := d.db.WithContext(ctx).Where("country = ?", country)
	if city != "" {
		tx = tx.Where("city = ?", city)
	}

	return d.findMany(ctx, tx)
}

func (d *UserDAO) Search(ctx context.Context, query string) ([]User, error) {
	pattern := "%" + query + "%"

	return d.findMany(ctx, d.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern))
}

func (d *UserDAO) findMany(ctx context.Context, tx *gorm.DB) ([]User, error) {
	var users []User

	result := tx.Preload("Type").Preload("Gender").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Update writes the mutable profile fields only. Type and gender are
// immutable through the update path.
func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{ID: user.ID}).
		Select("email", "first_name", "last_name", "country", "city", "phone", "avatar").
		Updates(map[string]any{
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"country":    user.Country,
			"city":       user.City,
			"phone":      user.Phone,
			"avatar":     user.Avatar,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, user.ID)
}

func (d *UserDAO) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	result := d.db.WithContext(ctx).Model(&User{ID: id}).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
