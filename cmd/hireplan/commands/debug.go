package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hireplan/internal/model"
	"hireplan/internal/planner"
)

// parseRoleFlag 解析 "role:city"
func parseRoleFlag(v string) (model.RoleCity, error) {
	role, city, ok := strings.Cut(v, ":")
	if !ok {
		return model.RoleCity{}, fmt.Errorf("role %q must look like role:city", v)
	}
	return model.RoleCity{Role: strings.TrimSpace(role), City: strings.TrimSpace(city)}, nil
}

func debugCmd() *cobra.Command {
	var (
		start  string
		end    string
		roles  []string
		seed   uint64
		indent bool
	)

	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Print a randomized debug hiring plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := model.PlanContext{StartDate: start, EndDate: end}
			for _, r := range roles {
				rc, err := parseRoleFlag(r)
				if err != nil {
					return err
				}
				pc.Roles = append(pc.Roles, rc)
			}

			src := planner.NewSource()
			if seed != 0 {
				src = planner.NewSeededSource(seed)
			}
			plan, err := planner.GenerateDebug(pc, src)
			if err != nil {
				return err
			}

			var out []byte
			if indent {
				out, err = json.MarshalIndent(plan, "", "  ")
			} else {
				out, err = json.Marshal(plan)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "起始月份 YYYY-MM")
	cmd.Flags().StringVar(&end, "end", "", "结束月份 YYYY-MM")
	cmd.Flags().StringArrayVar(&roles, "role", nil, "岗位与城市 role:city，可重复")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "随机种子 (0 表示不固定)")
	cmd.Flags().BoolVar(&indent, "indent", false, "格式化输出")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
