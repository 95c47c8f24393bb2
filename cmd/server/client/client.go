// Package client provides commands that call the investigator gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-api/internal/handlers/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the investigator API",
	Long:  `Client commands call the InvestigatorService over gRPC and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Records
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(saveCmd)
	ClientCmd.AddCommand(deleteCmd)

	// Characteristics
	ClientCmd.AddCommand(updateCharacteristicsCmd)
	ClientCmd.AddCommand(rollCharacteristicsCmd)

	// Occupation and skill points
	ClientCmd.AddCommand(listOccupationsCmd)
	ClientCmd.AddCommand(setOccupationCmd)
	ClientCmd.AddCommand(customizeOccupationCmd)
	ClientCmd.AddCommand(selectStatCmd)
	ClientCmd.AddCommand(allocationCmd)
	ClientCmd.AddCommand(assignPointsCmd)
	ClientCmd.AddCommand(selectChoiceCmd)
	ClientCmd.AddCommand(deselectChoiceCmd)
	ClientCmd.AddCommand(addSpecializationCmd)
	ClientCmd.AddCommand(addAnyPickCmd)
	ClientCmd.AddCommand(addFieldSlotCmd)
	ClientCmd.AddCommand(renameSkillCmd)

	// Development
	ClientCmd.AddCommand(markCmd)
	ClientCmd.AddCommand(improveCmd)
	ClientCmd.AddCommand(clearImprovementsCmd)

	// Sharing and roll log
	ClientCmd.AddCommand(exportCmd)
	ClientCmd.AddCommand(importCmd)
	ClientCmd.AddCommand(rollLogCmd)
	ClientCmd.AddCommand(clearRollLogCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// invoke calls one service method and prints the response
func invoke(method string, fields map[string]any) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewClient(conn).Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// idFlag registers the --id flag every investigator command needs
func idFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "id", "", "Investigator ID (required)")
	_ = cmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}
