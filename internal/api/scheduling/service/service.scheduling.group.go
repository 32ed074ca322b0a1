package schedsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cleanops/internal/api/base/service"
	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// PropertyGroupService là cấu trúc chứa các phương thức liên quan đến PropertyGroup
type PropertyGroupService struct {
	*basesvc.BaseServiceMongoImpl[schedmodels.PropertyGroup]
}

// NewPropertyGroupService tạo mới PropertyGroupService
func NewPropertyGroupService() (*PropertyGroupService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PropertyGroups)
	if !exist {
		return nil, fmt.Errorf("failed to get property_groups collection: %v", common.ErrNotFound)
	}

	return &PropertyGroupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedmodels.PropertyGroup](collection),
	}, nil
}

// PropertyGroupMemberService là cấu trúc chứa các phương thức liên quan đến PropertyGroupMember
type PropertyGroupMemberService struct {
	*basesvc.BaseServiceMongoImpl[schedmodels.PropertyGroupMember]
}

// NewPropertyGroupMemberService tạo mới PropertyGroupMemberService
func NewPropertyGroupMemberService() (*PropertyGroupMemberService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PropertyGroupMembers)
	if !exist {
		return nil, fmt.Errorf("failed to get property_group_members collection: %v", common.ErrNotFound)
	}

	return &PropertyGroupMemberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedmodels.PropertyGroupMember](collection),
	}, nil
}

// FindGroupForProperty resolve nhóm của một bất động sản qua bảng membership.
// Trả về (nil, nil) khi bất động sản không thuộc nhóm nào — đây là kết quả
// nghiệp vụ bình thường (not applicable), không phải lỗi.
func FindGroupForProperty(ctx context.Context, members *PropertyGroupMemberService, groups *PropertyGroupService, propertyID primitive.ObjectID) (*schedmodels.PropertyGroup, error) {
	member, err := members.FindOne(ctx, bson.M{"propertyId": propertyID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	group, err := groups.FindOneById(ctx, member.GroupID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Membership trỏ tới nhóm đã bị xóa — coi như không thuộc nhóm nào
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}
