package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/averyhb/balancechat/internal"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a study document to the backend",
	Long: `Upload a local text file (notes, a syllabus, a reading list) so the
assistant can draw on it. Requires login.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		client, cleanup, err := authedClient()
		if err != nil {
			return err
		}
		defer cleanup()

		filename := filepath.Base(path)
		fileType := strings.TrimPrefix(filepath.Ext(path), ".")
		if fileType == "" {
			fileType = "txt"
		}

		ctx := cmdContext(cmd)
		err = internal.ShowProgress(ctx, fmt.Sprintf("Uploading %s", filename), func() error {
			return client.UploadDocument(ctx, filename, string(data), fileType)
		})
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		fmt.Println(internal.SuccessStyle.Render("✅ Uploaded " + filename))
		return nil
	},
}

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List uploaded study documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := authedClient()
		if err != nil {
			return err
		}
		defer cleanup()

		docs, err := client.Documents(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("failed to fetch documents: %w", err)
		}
		if len(docs) == 0 {
			fmt.Println("No documents uploaded yet.")
			return nil
		}
		for _, d := range docs {
			fmt.Printf("%s %s (%s)\n", idStyle.Render(fmt.Sprintf("#%d", d.ID)), titleStyle.Render(d.Filename), d.FileType)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(documentsCmd)
}
