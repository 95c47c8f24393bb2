package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "coc.api.v1alpha1.InvestigatorService"

// FullMethod returns the full gRPC method name for a service method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// InvestigatorServiceServer is the server API for InvestigatorService. Requests and
// responses are JSON objects carried as google.protobuf.Struct.
type InvestigatorServiceServer interface {
	CreateInvestigator(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetInvestigator(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListInvestigators(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveInvestigator(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteInvestigator(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCharacteristics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollCharacteristics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetOccupation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CustomizeOccupation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectOccupationStat(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAllocation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectChoiceOption(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeselectChoiceOption(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddFieldSpecialization(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddAnyPick(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddFieldSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenameSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListOccupations(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MarkForImprovement(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImproveSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearImprovements(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportShareCode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportShareCode(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRollLog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRollLog(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(InvestigatorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var unaryMethods = []struct {
	name string
	call unaryMethod
}{
	{"CreateInvestigator", InvestigatorServiceServer.CreateInvestigator},
	{"GetInvestigator", InvestigatorServiceServer.GetInvestigator},
	{"ListInvestigators", InvestigatorServiceServer.ListInvestigators},
	{"SaveInvestigator", InvestigatorServiceServer.SaveInvestigator},
	{"DeleteInvestigator", InvestigatorServiceServer.DeleteInvestigator},
	{"UpdateCharacteristics", InvestigatorServiceServer.UpdateCharacteristics},
	{"RollCharacteristics", InvestigatorServiceServer.RollCharacteristics},
	{"SetOccupation", InvestigatorServiceServer.SetOccupation},
	{"CustomizeOccupation", InvestigatorServiceServer.CustomizeOccupation},
	{"SelectOccupationStat", InvestigatorServiceServer.SelectOccupationStat},
	{"GetAllocation", InvestigatorServiceServer.GetAllocation},
	{"AssignPoints", InvestigatorServiceServer.AssignPoints},
	{"SelectChoiceOption", InvestigatorServiceServer.SelectChoiceOption},
	{"DeselectChoiceOption", InvestigatorServiceServer.DeselectChoiceOption},
	{"AddFieldSpecialization", InvestigatorServiceServer.AddFieldSpecialization},
	{"AddAnyPick", InvestigatorServiceServer.AddAnyPick},
	{"AddFieldSlot", InvestigatorServiceServer.AddFieldSlot},
	{"RenameSkill", InvestigatorServiceServer.RenameSkill},
	{"ListOccupations", InvestigatorServiceServer.ListOccupations},
	{"MarkForImprovement", InvestigatorServiceServer.MarkForImprovement},
	{"ImproveSkill", InvestigatorServiceServer.ImproveSkill},
	{"ClearImprovements", InvestigatorServiceServer.ClearImprovements},
	{"ExportShareCode", InvestigatorServiceServer.ExportShareCode},
	{"ImportShareCode", InvestigatorServiceServer.ImportShareCode},
	{"GetRollLog", InvestigatorServiceServer.GetRollLog},
	{"ClearRollLog", InvestigatorServiceServer.ClearRollLog},
}

// MethodNames lists the unary methods of the service in declaration order
func MethodNames() []string {
	out := make([]string, 0, len(unaryMethods))
	for _, m := range unaryMethods {
		out = append(out, m.name)
	}
	return out
}

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(InvestigatorServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(InvestigatorServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// InvestigatorServiceDesc is the grpc.ServiceDesc for InvestigatorService
var InvestigatorServiceDesc = func() grpc.ServiceDesc {
	desc := grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*InvestigatorServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "coc/api/v1alpha1/investigator.proto",
	}
	for _, m := range unaryMethods {
		desc.Methods = append(desc.Methods, methodDesc(m.name, m.call))
	}
	return desc
}()

// RegisterInvestigatorServiceServer registers srv with the gRPC server
func RegisterInvestigatorServiceServer(s grpc.ServiceRegistrar, srv InvestigatorServiceServer) {
	s.RegisterService(&InvestigatorServiceDesc, srv)
}

// Client calls InvestigatorService methods over a connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes a unary method by name
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
