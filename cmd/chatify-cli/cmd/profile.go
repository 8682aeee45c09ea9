package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pyoushmadan10/chatify/internal/app"
	"github.com/pyoushmadan10/chatify/internal/authstore"
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/modules/profile"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	profileEmail string
	avatarFile   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and update user profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, i *do.RootScope) error {
			users, err := app.Users(i)
			if err != nil {
				return err
			}
			return showProfile(ctx, cmd.OutOrStdout(), users, profileEmail)
		})
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Upload a new profile picture for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd.Context(), func(ctx context.Context, i *do.RootScope) error {
			users, err := app.Users(i)
			if err != nil {
				return err
			}
			svc, err := app.ProfileService(i)
			if err != nil {
				return err
			}
			return uploadAvatar(ctx, cmd.OutOrStdout(), users, svc, afero.NewOsFs(), profileEmail, avatarFile)
		})
	},
}

func init() {
	profileCmd.PersistentFlags().StringVar(&profileEmail, "email", "", "email address of the user")
	_ = profileCmd.MarkPersistentFlagRequired("email")
	profileAvatarCmd.Flags().StringVar(&avatarFile, "file", "", "path of the image to upload")
	_ = profileAvatarCmd.MarkFlagRequired("file")

	profileCmd.AddCommand(profileShowCmd, profileAvatarCmd)
	rootCmd.AddCommand(profileCmd)
}

// withContainer runs fn with a container built from the environment and
// closes it afterwards.
func withContainer(ctx context.Context, fn func(ctx context.Context, i *do.RootScope) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.New()
	i := app.NewContainer(ctx, cfg)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.Shutdown(shutdownCtx, i)
	}()
	return fn(ctx, i)
}

func findUser(ctx context.Context, users domain.UserRepository, email string) (*domain.User, error) {
	user, err := users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("no user with email %q: %w", email, domain.ErrNotFound)
	}
	return user, nil
}

// showProfile prints what the profile screen would display for email.
func showProfile(ctx context.Context, w io.Writer, users domain.UserRepository, email string) error {
	user, err := findUser(ctx, users, email)
	if err != nil {
		return err
	}
	v := profile.NewProfileView(authstore.New(user, nil, nil), nil)
	return printSnapshot(w, v)
}

// uploadAvatar sends the image at path through the same path as the profile
// screen's upload control.
func uploadAvatar(ctx context.Context, w io.Writer, users domain.UserRepository, updater authstore.Updater, fs afero.Fs, email, path string) error {
	user, err := findUser(ctx, users, email)
	if err != nil {
		return err
	}
	// The screen ignores unreadable files; on the command line that is an error.
	if _, err := fs.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	store := authstore.New(user, updater, nil)
	v := profile.NewProfileView(store, filereader.New(nil))
	if err := v.HandleAvatarSelected(ctx, filereader.FromFS(fs, path)); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Fprintf(w, "Profile picture updated: %s\n", store.AuthUser().ProfilePic)
	return nil
}

func printSnapshot(w io.Writer, v *profile.ProfileView) error {
	s := v.Snapshot()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Full Name\t%s\n", s.FullName)
	fmt.Fprintf(tw, "Email Address\t%s\n", s.Email)
	fmt.Fprintf(tw, "Member Since\t%s\n", s.MemberSince)
	fmt.Fprintf(tw, "Account Status\t%s\n", s.AccountStatus)
	fmt.Fprintf(tw, "Avatar\t%s\n", s.AvatarSrc)
	return tw.Flush()
}
