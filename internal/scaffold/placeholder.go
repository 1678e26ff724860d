package scaffold

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// nestInfixes are the filename markers that identify NestJS-style backend
// components. A .ts or .js file carrying one of these gets a typed skeleton
// instead of a bare export.
var nestInfixes = []string{
	".module.", ".service.", ".controller.", ".gateway.",
	".guard.", ".interceptor.", ".pipe.", ".filter.",
	".decorator.", ".middleware.", ".entity.", ".dto.",
	".repository.", ".interface.", ".provider.", ".config.",
}

// placeholderContent chooses skeletal content for a generated file from its
// extension and, for TypeScript files, filename markers. Placeholders are
// meant to be replaced by real content; they only need to be syntactically
// plausible for their type.
func placeholderContent(filePath, projectName string) string {
	ext := strings.ToLower(path.Ext(filePath))
	name := strings.ToLower(path.Base(filePath))

	switch ext {
	case ".py":
		return fmt.Sprintf("\"\"\"\nAuto-generated placeholder file.\n\n"+
			"This file was created by the scaffold apply process. Replace with real content\n"+
			"from templates when available.\n\"\"\"\n\n"+
			"if __name__ == \"__main__\":\n"+
			"    print(\"%s placeholder: %s\")\n", projectName, filePath)

	case ".ts", ".js":
		for _, infix := range nestInfixes {
			if strings.Contains(name, infix) {
				return nestPlaceholder(filePath, projectName, name)
			}
		}
		if strings.Contains(name, "jest") &&
			(strings.Contains(name, "setup") || strings.Contains(name, "config")) {
			return fmt.Sprintf("// Jest setup file for %s\n\n"+
				"// Add global test configuration here\n"+
				"// e.g., jest.setTimeout(30000);\n", projectName)
		}
		if strings.Contains(name, "test") && strings.Contains(name, "util") {
			return fmt.Sprintf("// Test utilities for %s\n\n"+
				"// Add shared test utilities here\n"+
				"// e.g., mock factories, test helpers, etc.\n\nexport {};\n", projectName)
		}
		return fmt.Sprintf("// Auto-generated placeholder for %s\n// File: %s\n\nexport {}\n",
			projectName, filePath)

	case ".tsx", ".jsx":
		return fmt.Sprintf("// Auto-generated placeholder file for %s\n"+
			"export default function Placeholder() {\n"+
			"  return (<div>Placeholder: %s</div>);\n"+
			"}\n", projectName, filePath)

	case ".sql":
		return fmt.Sprintf("-- Auto-generated placeholder migration for %s\n-- File: %s\n",
			projectName, filePath)

	case ".json":
		return jsonPlaceholder(filePath, projectName, name)

	case ".md":
		return fmt.Sprintf("# Placeholder\n\nFile: %s\n\nProject: %s\n", filePath, projectName)
	}

	if path.Base(filePath) == "Makefile" {
		return "# Placeholder Makefile generated by scaffold apply\n\n" +
			".DEFAULT_GOAL := help\n\nhelp:\n" +
			"\t@echo 'Replace this placeholder with real Makefile content.'\n"
	}

	return fmt.Sprintf("// Placeholder for %s: %s\n", projectName, filePath)
}

func jsonPlaceholder(filePath, projectName, name string) string {
	if strings.Contains(name, "tsconfig") {
		if strings.Contains(name, "build") {
			return "{\n" +
				"  \"extends\": \"./tsconfig.json\",\n" +
				"  \"exclude\": [\"node_modules\", \"test\", \"dist\", \"**/*spec.ts\"]\n" +
				"}"
		}
		return "{\n" +
			"  \"compilerOptions\": {\n" +
			"    \"module\": \"commonjs\",\n" +
			"    \"declaration\": true,\n" +
			"    \"removeComments\": true,\n" +
			"    \"emitDecoratorMetadata\": true,\n" +
			"    \"experimentalDecorators\": true,\n" +
			"    \"useDefineForClassFields\": false,\n" +
			"    \"allowSyntheticDefaultImports\": true,\n" +
			"    \"target\": \"ES2022\",\n" +
			"    \"sourceMap\": true,\n" +
			"    \"outDir\": \"./dist\",\n" +
			"    \"baseUrl\": \"./\",\n" +
			"    \"incremental\": true,\n" +
			"    \"skipLibCheck\": true,\n" +
			"    \"strictNullChecks\": true,\n" +
			"    \"strict\": true,\n" +
			"    \"noImplicitAny\": true,\n" +
			"    \"strictBindCallApply\": true,\n" +
			"    \"forceConsistentCasingInFileNames\": true,\n" +
			"    \"noFallthroughCasesInSwitch\": true,\n" +
			"    \"paths\": {\"@/*\": [\"src/*\"]}\n" +
			"  },\n" +
			"  \"include\": [\"src/**/*\"],\n" +
			"  \"exclude\": [\"node_modules\", \"dist\"]\n" +
			"}"
	}

	out, err := json.MarshalIndent(map[string]any{
		"placeholder": true,
		"project":     projectName,
		"path":        filePath,
	}, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

// nestPlaceholder builds a typed NestJS skeleton. The class name derives
// from the filename: call.service.ts becomes CallService.
func nestPlaceholder(filePath, projectName, name string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(name, ".ts"), ".js")
	parts := strings.Split(base, ".")
	className := "Placeholder"
	if len(parts) >= 2 {
		className = pascalCase(parts[0]) + pascalCase(parts[1])
	}

	switch {
	case strings.Contains(name, ".module."):
		return fmt.Sprintf("import { Module } from '@nestjs/common';\n\n"+
			"@Module({\n  imports: [],\n  controllers: [],\n  providers: [],\n  exports: [],\n})\n"+
			"export class %s {}\n", className)
	case strings.Contains(name, ".service."):
		return fmt.Sprintf("import { Injectable } from '@nestjs/common';\n\n"+
			"@Injectable()\nexport class %s {\n  // TODO: Implement %s service methods\n}\n",
			className, projectName)
	case strings.Contains(name, ".controller."):
		return fmt.Sprintf("import { Controller } from '@nestjs/common';\n\n"+
			"@Controller()\nexport class %s {\n  // TODO: Implement %s controller endpoints\n}\n",
			className, projectName)
	case strings.Contains(name, ".gateway."):
		return fmt.Sprintf("import { WebSocketGateway } from '@nestjs/websockets';\n\n"+
			"@WebSocketGateway()\nexport class %s {\n  // TODO: Implement WebSocket handlers\n}\n",
			className)
	case strings.Contains(name, ".entity."):
		return fmt.Sprintf("import { Entity, PrimaryGeneratedColumn, Column } from 'typeorm';\n\n"+
			"@Entity()\nexport class %s {\n"+
			"  @PrimaryGeneratedColumn('uuid')\n  id!: string;\n\n"+
			"  // TODO: Add entity columns\n}\n", className)
	case strings.Contains(name, ".dto."):
		return fmt.Sprintf("import { IsString, IsOptional } from 'class-validator';\n\n"+
			"export class %s {\n  // TODO: Define DTO properties with validation decorators\n}\n",
			className)
	case strings.Contains(name, ".guard."):
		return fmt.Sprintf("import { Injectable, CanActivate, ExecutionContext } from '@nestjs/common';\n\n"+
			"@Injectable()\nexport class %s implements CanActivate {\n"+
			"  canActivate(context: ExecutionContext): boolean {\n"+
			"    // TODO: Implement guard logic\n    return true;\n  }\n}\n", className)
	case strings.Contains(name, ".interceptor."):
		return fmt.Sprintf("import { Injectable, NestInterceptor, ExecutionContext, CallHandler } from '@nestjs/common';\n"+
			"import { Observable } from 'rxjs';\n\n"+
			"@Injectable()\nexport class %s implements NestInterceptor {\n"+
			"  intercept(context: ExecutionContext, next: CallHandler): Observable<any> {\n"+
			"    return next.handle();\n  }\n}\n", className)
	case strings.Contains(name, ".middleware."):
		return fmt.Sprintf("import { Injectable, NestMiddleware } from '@nestjs/common';\n"+
			"import { Request, Response, NextFunction } from 'express';\n\n"+
			"@Injectable()\nexport class %s implements NestMiddleware {\n"+
			"  use(req: Request, res: Response, next: NextFunction) {\n    next();\n  }\n}\n",
			className)
	case strings.Contains(name, ".interface."):
		return fmt.Sprintf("// Interface for %s\n\nexport interface %s {\n"+
			"  // TODO: Define interface properties\n}\n", projectName, className)
	case strings.Contains(name, ".config."):
		return fmt.Sprintf("// Configuration for %s\n\nexport const %sConfig = {\n"+
			"  // TODO: Add configuration values\n};\n", projectName, parts[0])
	default:
		return fmt.Sprintf("// Auto-generated placeholder for %s\n\nexport class %s {\n"+
			"  // TODO: Implement\n}\n", projectName, className)
	}
}

// pascalCase converts a lowercase hyphenated token to PascalCase.
func pascalCase(s string) string {
	words := strings.Split(s, "-")
	var sb strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(w[:1]))
		sb.WriteString(w[1:])
	}
	return sb.String()
}

// barrelContent is the minimal re-export placeholder written into each
// generated domain grouping directory.
func barrelContent(domain, grouping string) string {
	return fmt.Sprintf("// Barrel exports for the %s domain %s.\n\nexport {};\n",
		domain, grouping)
}
