package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/application/dto"
	"github.com/yarwhq/yarw/internal/application/services"
	"github.com/yarwhq/yarw/internal/domain/values"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage launch profiles",
		Long:    `Create, inspect, update and delete the stored launch profiles.`,
	}

	cmd.AddCommand(
		newProfileCreateCmd(opts),
		newProfileListCmd(opts),
		newProfileShowCmd(opts),
		newProfileUpdateCmd(opts),
		newProfileDeleteCmd(opts),
	)
	return cmd
}

func newProfileCreateCmd(opts *rootOptions) *cobra.Command {
	var fields profileFields

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile",
		Long: `Create a profile and store it. Fields not given on the command line take
the configured defaults. Without --name an interactive terminal prompts for
the name, variant and render backend.`,
		Example: `  yarw profile create --name Main --flag FFlagFastStart=true
  yarw profile create --name Editor --variant studio --renderer vulkan
  yarw profile create`,
		Args: cobra.NoArgs,
		RunE: withContainer(opts, func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			draft := ctx.Container.NewProfileDraft("")
			if err := fields.apply(cmd, &draft); err != nil {
				return err
			}

			if strings.TrimSpace(draft.Name) == "" {
				prompter := ctx.Container.Prompter()
				if !prompter.IsInteractive() {
					return apperrors.NewValidationError("name", "cannot be empty (pass --name)")
				}
				prompted, err := prompter.PromptProfile(draft)
				if err != nil {
					return fmt.Errorf("prompt failed: %w", err)
				}
				draft = prompted
			}
			if err := draft.Validate(); err != nil {
				return apperrors.NewValidationError("profile", err.Error())
			}

			store, err := ctx.Container.LoadProfileStore(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load profiles: %w", err)
			}
			id := store.Create(draft)
			if err := store.Save(ctx.Context); err != nil {
				return fmt.Errorf("failed to save profiles: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %q (%s)\n", draft.Name, id)
			return nil
		}),
	}

	fields.RegisterFlags(cmd)
	return cmd
}

func newProfileListCmd(opts *rootOptions) *cobra.Command {
	output := DefaultOutputOptions()

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles",
		Long:    `List every stored profile ordered by name.`,
		Example: `  yarw profile list
  yarw profile list --format json`,
		Args: cobra.NoArgs,
		RunE: withContainer(opts, func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			if err := output.ValidateFlags(ctx.Container.Formatters().SupportedFormats()); err != nil {
				return err
			}

			store, err := ctx.Container.LoadProfileStore(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load profiles: %w", err)
			}

			views := make([]dto.ProfileView, 0, store.Len())
			for id, p := range store.All() {
				views = append(views, dto.NewProfileView(id, p))
			}
			return output.render(ctx.Container.Formatters(), cmd.OutOrStdout(), views)
		}),
	}

	output.RegisterFlags(cmd)
	return cmd
}

func newProfileShowCmd(opts *rootOptions) *cobra.Command {
	output := DefaultOutputOptions()

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one profile",
		Example: `  yarw profile show 3f0c9d2e-6a1b-4c55-9a43-0c1e2f3a4b5c
  yarw profile show 3f0c9d2e-6a1b-4c55-9a43-0c1e2f3a4b5c --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(opts, func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			if err := output.ValidateFlags(ctx.Container.Formatters().SupportedFormats()); err != nil {
				return err
			}
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			store, err := ctx.Container.LoadProfileStore(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load profiles: %w", err)
			}
			p, err := store.Get(id)
			if err != nil {
				return err
			}
			return output.render(ctx.Container.Formatters(), cmd.OutOrStdout(),
				[]dto.ProfileView{dto.NewProfileView(id, p)})
		}),
	}

	output.RegisterFlags(cmd)
	return cmd
}

func newProfileUpdateCmd(opts *rootOptions) *cobra.Command {
	var (
		fields profileFields
		unset  []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a profile",
		Long: `Change the fields given on the command line. Flags not mentioned keep their
current value; --unset-flag removes an override.`,
		Example: `  yarw profile update 3f0c9d2e-6a1b-4c55-9a43-0c1e2f3a4b5c --renderer opengl
  yarw profile update 3f0c9d2e-6a1b-4c55-9a43-0c1e2f3a4b5c --flag DFIntTaskSchedulerTargetFps=int:144`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(opts, func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}

			store, err := ctx.Container.LoadProfileStore(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load profiles: %w", err)
			}
			p, err := store.Get(id)
			if err != nil {
				return err
			}

			if err := fields.apply(cmd, &p); err != nil {
				return err
			}
			for _, name := range unset {
				if !p.RemoveFlag(name) {
					ctx.Logger.Warn("flag not set on profile", "id", id.String(), "flag", name)
				}
			}
			if err := p.Validate(); err != nil {
				return apperrors.NewValidationError("profile", err.Error())
			}

			if err := store.Update(id, p); err != nil {
				return err
			}
			if err := store.Save(ctx.Context); err != nil {
				return fmt.Errorf("failed to save profiles: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %q (%s)\n", p.Name, id)
			return nil
		}),
	}

	fields.RegisterFlags(cmd)
	cmd.Flags().StringArrayVar(&unset, "unset-flag", nil, "Remove a feature flag override (repeatable)")
	return cmd
}

func newProfileDeleteCmd(opts *rootOptions) *cobra.Command {
	var (
		idText string
		name   string
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete profiles by id or name",
		Long: `Delete one profile by --id, or every profile called --name. A profile that
does not exist is reported and skipped.`,
		Example: `  yarw profile delete --id 3f0c9d2e-6a1b-4c55-9a43-0c1e2f3a4b5c
  yarw profile delete --name Main`,
		Args: cobra.NoArgs,
		RunE: withContainer(opts, func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			store, err := ctx.Container.LoadProfileStore(ctx.Context)
			if err != nil {
				return fmt.Errorf("failed to load profiles: %w", err)
			}

			var ids []values.ProfileID
			if idText != "" {
				id, err := parseIDArg(idText)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			} else {
				ids = store.FindByName(name)
				if len(ids) == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "No profile named %q\n", name)
					return nil
				}
				if len(ids) > 1 && !yes && ctx.Container.Prompter().IsInteractive() {
					ok, err := ctx.Container.Prompter().Confirm(
						fmt.Sprintf("Delete %d profiles named %q?", len(ids), name))
					if err != nil {
						return fmt.Errorf("prompt failed: %w", err)
					}
					if !ok {
						return nil
					}
				}
			}

			deleted := deleteProfiles(store, ids, cmd)
			if deleted == 0 {
				return nil
			}
			if err := store.Save(ctx.Context); err != nil {
				return fmt.Errorf("failed to save profiles: %w", err)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&idText, "id", "", "Id of the profile to delete")
	cmd.Flags().StringVar(&name, "name", "", "Delete every profile with this name")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before deleting several profiles")
	cmd.MarkFlagsMutuallyExclusive("id", "name")
	cmd.MarkFlagsOneRequired("id", "name")
	return cmd
}

// deleteProfiles removes ids from store, reporting the ones that are missing.
func deleteProfiles(store *services.ProfileStore, ids []values.ProfileID, cmd *cobra.Command) int {
	deleted := 0
	for _, id := range ids {
		if err := store.Delete(id); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipped: %v\n", err)
			continue
		}
		deleted++
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", id)
	}
	return deleted
}

func parseIDArg(s string) (values.ProfileID, error) {
	id, err := values.ParseProfileID(strings.TrimSpace(s))
	if err != nil {
		return values.ProfileID{}, apperrors.NewValidationError("id", err.Error())
	}
	return id, nil
}
