package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ReferenceDAO covers the two flat lookup tables: genders and user types.
type ReferenceDAO struct {
	db *gorm.DB
}

func NewReferenceDAO(db *gorm.DB) *ReferenceDAO {
	return &ReferenceDAO{
		db: db,
	}
}

func (d *ReferenceDAO) InsertGender(ctx context.Context, gender Gender) (Gender, error) {
	result := d.db.WithContext(ctx).Create(&gender)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_genders_name") {
			return Gender{}, ErrGenderExists
		}

		return Gender{}, result.Error
	}

	return gender, nil
}

func (d *ReferenceDAO) FindGenderByID(ctx context.Context, id uint) (Gender, error) {
	var gender Gender

	result := d.db.WithContext(ctx).First(&gender, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Gender{}, ErrGenderNotFound
		}

		return Gender{}, result.Error
	}

	return gender, nil
}

func (d *ReferenceDAO) FindAllGenders(ctx context.Context) ([]Gender, error) {
	var genders []Gender

	result := d.db.WithContext(ctx).Order("id").Find(&genders)
	if result.Error != nil {
		return nil, result.Error
	}

	return genders, nil
}

func (d *ReferenceDAO) DeleteGender(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Gender{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGenderNotFound
	}

	return nil
}

func (d *ReferenceDAO) InsertUserType(ctx context.Context, userType UserType) (UserType, error) {
	result := d.db.WithContext(ctx).Create(&userType)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_user_types_name") {
			return UserType{}, ErrUserTypeExists
		}

		return UserType{}, result.Error
	}

	return userType, nil
}

func (d *ReferenceDAO) FindUserTypeByID(ctx context.Context, id uint) (UserType, error) {
	var userType UserType

	result := d.db.WithContext(ctx).First(&userType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return UserType{}, ErrUserTypeNotFound
		}

		return UserType{}, result.Error
	}

	return userType, nil
}

func (d *ReferenceDAO) FindUserTypeByName(ctx context.Context, name string) (UserType, error) {
	var userType UserType

	result := d.db.WithContext(ctx).First(&userType, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return UserType{}, ErrUserTypeNotFound
		}

		return UserType{}, result.Error
	}

	return userType, nil
}

func (d *ReferenceDAO) FindAllUserTypes(ctx context.Context) ([]UserType, error) {
	var userTypes []UserType

	result := d.db.WithContext(ctx).Order("id").Find(&userTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return userTypes, nil
}

func (d *ReferenceDAO) DeleteUserType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&UserType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserTypeNotFound
	}

	return nil
}
