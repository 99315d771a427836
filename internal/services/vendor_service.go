package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
)

// vendorService handles vendor-related business logic.
type vendorService struct {
	db *gorm.DB
}

// NewVendorService creates a new VendorServicer.
func NewVendorService(db *gorm.DB) VendorServicer {
	return &vendorService{db: db}
}

// CreateVendor creates a new vendor
func (s *vendorService) CreateVendor(userID uint, name, description string) (*models.Vendor, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vendor name is required")
	}

	var count int64
	if err := s.db.Model(&models.Vendor{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vendor with this name already exists")
	}

	vendor := &models.Vendor{
		UserID:      userID,
		Name:        name,
		Description: description,
	}

	if err := s.db.Create(vendor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return vendor, nil
}

// GetUserVendors retrieves all vendors for a user.
func (s *vendorService) GetUserVendors(userID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&vendors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return vendors, nil
}

// GetVendorByID retrieves a vendor by ID for a specific user
func (s *vendorService) GetVendorByID(userID, vendorID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.Where("id = ? AND user_id = ?", vendorID, userID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &vendor, nil
}

// UpdateVendor updates an existing vendor
func (s *vendorService) UpdateVendor(userID, vendorID uint, name, description string) (*models.Vendor, error) {
	vendor, err := s.GetVendorByID(userID, vendorID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}

	if len(updates) > 0 {
		if err := s.db.Model(vendor).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return vendor, nil
}

// DeleteVendor deletes a vendor. Deletion is blocked while payment
// transactions still reference the vendor.
func (s *vendorService) DeleteVendor(userID, vendorID uint) error {
	vendor, err := s.GetVendorByID(userID, vendorID)
	if err != nil {
		return err
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).Where("vendor_id = ?", vendorID).Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrVendorInUse
	}

	if err := s.db.Delete(vendor).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
