package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateWithAccount inserts the auth identity and its profile row in one
// transaction; a profile failure rolls the identity back, so no orphaned
// identities can exist.
func (r *UserRepository) CreateWithAccount(account *model.Account, user *model.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		user.AccountID = account.ID
		user.AuthID = account.AuthID
		return tx.Create(user).Error
	})
}

func (r *UserRepository) FindAccountByEmail(email string) (*model.Account, error) {
	var account model.Account
	err := r.DB.Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *UserRepository) FindAccountByID(id uint) (*model.Account, error) {
	var account model.Account
	err := r.DB.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByAccountID(accountID uint) (*model.User, error) {
	var user model.User
	err := r.DB.Where("account_id = ?", accountID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(accountID uint, passwordHash string) error {
	return r.DB.Model(&model.Account{}).
		Where("id = ?", accountID).
		Update("password_hash", passwordHash).
		Error
}

func (r *UserRepository) TouchLastLogin(accountID uint) error {
	return r.DB.Model(&model.Account{}).
		Where("id = ?", accountID).
		Update("last_login", gorm.Expr("CURRENT_TIMESTAMP(3)")).
		Error
}

func (r *UserRepository) ListStudents(page, pageSize int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{}).Where("role = ?", model.Student)
	query.Count(&total)

	offset := (page - 1) * pageSize
	err := query.Order("last_name ASC, first_name ASC").Offset(offset).Limit(pageSize).Find(&users).Error
	return users, total, err
}
